package model

// VideoServer une source de lecture telle qu'exposée par l'API publique
type VideoServer struct {
	Name    string `json:"name"`
	URL     string `json:"url"`
	Lang    string `json:"lang"`
	Quality string `json:"quality"`
	Pub     int    `json:"pub"`
	Play    int    `json:"play"`
}

// EpisodeBlock la liste des sources d'un épisode
type EpisodeBlock struct {
	Videos []VideoServer `json:"videos"`
}

// Season les épisodes d'une saison, indexés par numéro d'épisode (en chaîne)
type Season struct {
	Episodes map[string]EpisodeBlock `json:"episodes"`
}

// SeasonMap structure imbriquée consommée par GET /api/series/{id} :
// numéro de saison → episodes → numéro d'épisode → videos
type SeasonMap map[string]Season
