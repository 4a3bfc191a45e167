package content

import "gorm.io/gorm"

// Category splits the repertoire into independently listed collections.
type Category string

const (
	CategorySolo          Category = "solo"
	CategoryWithPiano     Category = "with_piano"
	CategoryWithOrchestra Category = "with_orchestra"
	CategoryChamber       Category = "chamber"
)

// Categories is the display order of the repertoire page.
var Categories = []Category{
	CategorySolo,
	CategoryWithPiano,
	CategoryWithOrchestra,
	CategoryChamber,
}

func (c Category) Valid() bool {
	switch c {
	case CategorySolo, CategoryWithPiano, CategoryWithOrchestra, CategoryChamber:
		return true
	}
	return false
}

// InCategory restricts repertoire queries to one collection.
func InCategory(c Category) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("category = ?", c)
	}
}
