package content

import "time"

type Biography struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Title        string `gorm:"size:50;not null" json:"title"`
	Body         string `gorm:"type:text" json:"body"`
	LanguageSlug string `gorm:"size:10;not null;uniqueIndex:idx_biographies_language_slug" json:"language_slug"`
}

type RepertoireEntry struct {
	ID       uint     `gorm:"primaryKey" json:"id"`
	Category Category `gorm:"size:20;not null;index" json:"category"`
	Composer string   `gorm:"size:100" json:"composer"`
	Title    string   `gorm:"type:text" json:"title"`
}

type Event struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Date        *time.Time `gorm:"index" json:"date"`
	Location    string     `gorm:"size:400" json:"location"`
	Description string     `gorm:"type:text" json:"description"`
	TicketLink  *string    `gorm:"size:200" json:"ticket_link"`
}

type VideoLink struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Title string `gorm:"size:100" json:"title"`
	URL   string `gorm:"column:url;type:text" json:"url"`
}

type PhotoLink struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Title string `gorm:"size:100" json:"title"`
	URL   string `gorm:"column:url;type:text" json:"url"`
}

type Contact struct {
	ID               uint    `gorm:"primaryKey" json:"id"`
	ContactPerson    string  `gorm:"size:200" json:"contact_person"`
	Phone            string  `gorm:"size:50" json:"phone"`
	PhoneOptional    *string `gorm:"size:50" json:"phone_optional"`
	Email            string  `gorm:"size:100" json:"email"`
	EmailOptional    *string `gorm:"size:100" json:"email_optional"`
	WhatsappOptional *string `gorm:"size:30" json:"whatsapp_optional"`
}

// Models lists every persisted content type, in migration order.
func Models() []any {
	return []any{
		&Biography{},
		&RepertoireEntry{},
		&Event{},
		&VideoLink{},
		&PhotoLink{},
		&Contact{},
	}
}
