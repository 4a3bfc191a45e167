package siteapi

import (
	"artist-site/database"
	"artist-site/internal/domain/content"
)

func queries() *content.Queries {
	return content.NewQueries(database.DB)
}
