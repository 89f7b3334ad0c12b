package domain

var (
	LEVEL_LIST_SUCCESS  = "Eğitim kademeleri getirildi"
	LEVEL_LIST_FAILED   = "Eğitim kademeleri getirilemedi"
	COURSE_LIST_SUCCESS = "Dersler getirildi"
	COURSE_LIST_FAILED  = "Dersler getirilemedi"
	COURSE_GET_SUCCESS  = "Ders bilgisi getirildi"
	COURSE_GET_FAILED   = "Ders bulunamadı"
	TOPIC_LIST_SUCCESS  = "Konular getirildi"
	TOPIC_LIST_FAILED   = "Konular getirilemedi"

	FLOW_STEP_SUCCESS  = "Adım durumu hazır"
	FLOW_STEP_REDIRECT = "Adım için gerekli durum bulunamadı, yönlendiriliyor"
	FLOW_SAVE_SUCCESS  = "Adım durumu kaydedildi"
	FLOW_SAVE_FAILED   = "Adım durumu kaydedilemedi"
	FLOW_RESET_SUCCESS = "Akış sıfırlandı"

	QUIZ_GENERATE_SUCCESS  = "Sınav oluşturuldu"
	QUIZ_GENERATE_FAILED   = "Sınav oluşturulamadı"
	QUIZ_SESSION_SUCCESS   = "Sınav oturumu getirildi"
	QUIZ_SESSION_FAILED    = "Sınav oturumu bulunamadı"
	QUIZ_ANSWER_SUCCESS    = "Cevap kaydedildi"
	QUIZ_ANSWER_FAILED     = "Cevap kaydedilemedi"
	QUIZ_FINISH_SUCCESS    = "Sınav tamamlandı"
	QUIZ_FINISH_FAILED     = "Sınav tamamlanamadı"
	QUIZ_RESULT_SUCCESS    = "Sınav sonucu getirildi"
	QUIZ_RESULT_FAILED     = "Sınav sonucu getirilemedi"
	RESULT_HISTORY_SUCCESS = "Sonuç geçmişi getirildi"
	RESULT_HISTORY_FAILED  = "Sonuç geçmişi getirilemedi"
)
