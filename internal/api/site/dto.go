package siteapi

import "artist-site/internal/domain/content"

type BioResponse struct {
	Selected    *content.Biography  `json:"selected"`
	Biographies []content.Biography `json:"biographies"`
}

type RepertoireResponse struct {
	Solo          []content.RepertoireEntry `json:"solo"`
	WithPiano     []content.RepertoireEntry `json:"with_piano"`
	WithOrchestra []content.RepertoireEntry `json:"with_orchestra"`
	Chamber       []content.RepertoireEntry `json:"chamber"`
}

type MediaResponse struct {
	Photos []content.PhotoLink `json:"photos"`
	Videos []content.VideoLink `json:"videos"`
}
