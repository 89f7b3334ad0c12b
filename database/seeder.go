package database

import (
	"github.com/mehdiozdemir/EduAI-sub002/internal/entity"
	"gorm.io/gorm"
)

// Catalog seed data. The level/course/topic catalog is content, not user
// state; it is upserted on every start so content updates ship with the
// binary.

var LevelSeedData = []entity.EducationLevel{
	{LevelID: "ilkokul", Name: "İlkokul", Description: "1-4. sınıflar", SortOrder: 1},
	{LevelID: "ortaokul", Name: "Ortaokul", Description: "5-8. sınıflar", SortOrder: 2},
	{LevelID: "lise", Name: "Lise", Description: "9-12. sınıflar", SortOrder: 3},
}

var CourseSeedData = []entity.Course{
	{CourseID: "mat-5", Name: "Matematik 5. Sınıf", Description: "Ortaokul matematik temelleri", LevelID: "ortaokul"},
	{CourseID: "mat-6", Name: "Matematik 6. Sınıf", Description: "Kesirler, oran ve cebire giriş", LevelID: "ortaokul"},
	{CourseID: "fen-5", Name: "Fen Bilimleri 5. Sınıf", Description: "Canlılar ve madde", LevelID: "ortaokul"},
	{CourseID: "tur-5", Name: "Türkçe 5. Sınıf", Description: "Okuma ve anlama", LevelID: "ortaokul"},
	{CourseID: "fiz-9", Name: "Fizik 9. Sınıf", Description: "Hareket ve kuvvet", LevelID: "lise"},
	{CourseID: "kim-9", Name: "Kimya 9. Sınıf", Description: "Maddenin yapısı", LevelID: "lise"},
}

var TopicSeedData = []entity.Topic{
	// Matematik 5
	{TopicID: "mat-5-dogal-sayilar", CourseID: "mat-5", Name: "Doğal Sayılar", DifficultyLevel: 1, EstimatedMinutes: 30, SortOrder: 1},
	{TopicID: "mat-5-kesirler", CourseID: "mat-5", Name: "Kesirler", DifficultyLevel: 2, EstimatedMinutes: 45, SortOrder: 2},
	{TopicID: "mat-5-ondalik", CourseID: "mat-5", Name: "Ondalık Gösterim", DifficultyLevel: 2, EstimatedMinutes: 40, SortOrder: 3},
	{TopicID: "mat-5-geometri", CourseID: "mat-5", Name: "Temel Geometrik Kavramlar", DifficultyLevel: 3, EstimatedMinutes: 50, SortOrder: 4},
	// Matematik 6
	{TopicID: "mat-6-carpanlar", CourseID: "mat-6", Name: "Çarpanlar ve Katlar", DifficultyLevel: 2, EstimatedMinutes: 40, SortOrder: 1},
	{TopicID: "mat-6-oran", CourseID: "mat-6", Name: "Oran", DifficultyLevel: 2, EstimatedMinutes: 35, SortOrder: 2},
	{TopicID: "mat-6-cebir", CourseID: "mat-6", Name: "Cebirsel İfadeler", DifficultyLevel: 3, EstimatedMinutes: 55, SortOrder: 3},
	// Fen 5
	{TopicID: "fen-5-gunes", CourseID: "fen-5", Name: "Güneş, Dünya ve Ay", DifficultyLevel: 1, EstimatedMinutes: 30, SortOrder: 1},
	{TopicID: "fen-5-canlilar", CourseID: "fen-5", Name: "Canlılar Dünyası", DifficultyLevel: 1, EstimatedMinutes: 35, SortOrder: 2},
	{TopicID: "fen-5-madde", CourseID: "fen-5", Name: "Maddenin Değişimi", DifficultyLevel: 2, EstimatedMinutes: 45, SortOrder: 3},
	// Türkçe 5
	{TopicID: "tur-5-okuma", CourseID: "tur-5", Name: "Okuduğunu Anlama", DifficultyLevel: 1, EstimatedMinutes: 30, SortOrder: 1},
	{TopicID: "tur-5-yazim", CourseID: "tur-5", Name: "Yazım Kuralları", DifficultyLevel: 2, EstimatedMinutes: 35, SortOrder: 2},
	// Fizik 9
	{TopicID: "fiz-9-hareket", CourseID: "fiz-9", Name: "Hareket", DifficultyLevel: 2, EstimatedMinutes: 50, SortOrder: 1},
	{TopicID: "fiz-9-kuvvet", CourseID: "fiz-9", Name: "Kuvvet ve Newton Yasaları", DifficultyLevel: 3, EstimatedMinutes: 60, SortOrder: 2},
	// Kimya 9
	{TopicID: "kim-9-atom", CourseID: "kim-9", Name: "Atom ve Periyodik Sistem", DifficultyLevel: 2, EstimatedMinutes: 50, SortOrder: 1},
	{TopicID: "kim-9-baglar", CourseID: "kim-9", Name: "Kimyasal Bağlar", DifficultyLevel: 3, EstimatedMinutes: 55, SortOrder: 2},
}

func SeedCatalog(db *gorm.DB) error {
	for i := range LevelSeedData {
		level := LevelSeedData[i]
		if err := db.Where("level_id = ?", level.LevelID).Assign(level).FirstOrCreate(&level).Error; err != nil {
			return err
		}
	}
	for i := range CourseSeedData {
		course := CourseSeedData[i]
		if err := db.Where("course_id = ?", course.CourseID).Assign(course).FirstOrCreate(&course).Error; err != nil {
			return err
		}
	}
	for i := range TopicSeedData {
		topic := TopicSeedData[i]
		if err := db.Where("topic_id = ?", topic.TopicID).Assign(topic).FirstOrCreate(&topic).Error; err != nil {
			return err
		}
	}
	return nil
}
