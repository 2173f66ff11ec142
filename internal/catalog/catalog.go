// Package catalog transforme les lignes plates de la table videos en
// arborescence saison → épisode → sources, et inversement pour les
// écritures d'administration.
package catalog

import (
	"fmt"
	"strconv"

	"github.com/user/ztvplus/internal/model"
)

// Valeurs par défaut appliquées sur le chemin d'écriture série
const (
	DefaultPub  = 0
	DefaultPlay = 1
)

// fallbackKey clé appliquée quand une ligne n'a pas de numéro de
// saison/épisode (données mal formées, non attendu en pratique)
const fallbackKey = "1"

// VideoInput une source soumise par l'admin. Pub et Play sont des
// pointeurs afin de distinguer « absent » de « zéro ».
type VideoInput struct {
	Name    string `json:"name"`
	URL     string `json:"url"`
	Lang    string `json:"lang"`
	Quality string `json:"quality"`
	Pub     *int   `json:"pub"`
	Play    *int   `json:"play"`
}

// EpisodeInput le bloc videos d'un épisode soumis par l'admin
type EpisodeInput struct {
	Videos []VideoInput `json:"videos"`
}

// SeasonInput le bloc episodes d'une saison soumise par l'admin
type SeasonInput struct {
	Episodes map[string]EpisodeInput `json:"episodes"`
}

// SeasonTree document imbriqué complet soumis par PUT /api/admin/series/{id}
type SeasonTree map[string]SeasonInput

// Nest regroupe des lignes plates (déjà triées saison ASC, épisode ASC,
// qualité DESC) en arborescence saison → episodes → videos. L'ordre des
// sources au sein d'un épisode suit l'ordre des lignes.
func Nest(rows []model.VideoRecord) model.SeasonMap {
	out := make(model.SeasonMap)
	for _, row := range rows {
		seasonKey := fallbackKey
		if row.SeasonNumber != nil {
			seasonKey = strconv.Itoa(*row.SeasonNumber)
		}
		episodeKey := fallbackKey
		if row.EpisodeNumber != nil {
			episodeKey = strconv.Itoa(*row.EpisodeNumber)
		}

		season, ok := out[seasonKey]
		if !ok {
			season = model.Season{Episodes: make(map[string]model.EpisodeBlock)}
		}
		block := season.Episodes[episodeKey]
		block.Videos = append(block.Videos, model.VideoServer{
			Name:    row.Name,
			URL:     row.URL,
			Lang:    row.Lang,
			Quality: row.Quality,
			Pub:     row.Pub,
			Play:    row.Play,
		})
		season.Episodes[episodeKey] = block
		out[seasonKey] = season
	}
	return out
}

// Flatten valide un document imbriqué soumis par l'admin et le convertit
// en lignes de la table videos. La validation est entièrement faite en
// amont : la moindre violation rejette le document complet, aucune ligne
// n'est produite. Pub et Play absents sont ramenés à leurs défauts
// (pub=0, play=1) puis contraints à {0,1}.
func Flatten(tmdbID int, tree SeasonTree) ([]model.VideoRecord, error) {
	if len(tree) == 0 {
		return nil, fmt.Errorf("le document ne contient aucune saison")
	}

	var rows []model.VideoRecord
	for seasonKey, season := range tree {
		seasonNum, err := parseNumber(seasonKey)
		if err != nil {
			return nil, fmt.Errorf("numéro de saison invalide : %q", seasonKey)
		}
		if season.Episodes == nil {
			return nil, fmt.Errorf("saison %s : objet episodes manquant", seasonKey)
		}
		for episodeKey, episode := range season.Episodes {
			episodeNum, err := parseNumber(episodeKey)
			if err != nil {
				return nil, fmt.Errorf("saison %s : numéro d'épisode invalide : %q", seasonKey, episodeKey)
			}
			if episode.Videos == nil {
				return nil, fmt.Errorf("saison %s épisode %s : tableau videos manquant", seasonKey, episodeKey)
			}
			for i, video := range episode.Videos {
				pub, play, err := checkVideo(video, true)
				if err != nil {
					return nil, fmt.Errorf("saison %s épisode %s vidéo %d : %w", seasonKey, episodeKey, i+1, err)
				}
				s, e := seasonNum, episodeNum
				rows = append(rows, model.VideoRecord{
					TmdbID:        tmdbID,
					Type:          model.TypeSeries,
					SeasonNumber:  &s,
					EpisodeNumber: &e,
					Name:          video.Name,
					URL:           video.URL,
					Lang:          video.Lang,
					Quality:       video.Quality,
					Pub:           pub,
					Play:          play,
				})
			}
		}
	}
	return rows, nil
}

// FlattenMovie valide une liste plate de sources pour un film. Le chemin
// film est strict : pub et play doivent être présents, aucune coercition.
// Une seule entrée invalide rejette le lot entier.
func FlattenMovie(tmdbID int, entries []VideoInput) ([]model.VideoRecord, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("la liste de vidéos est vide")
	}

	rows := make([]model.VideoRecord, 0, len(entries))
	for i, video := range entries {
		pub, play, err := checkVideo(video, false)
		if err != nil {
			return nil, fmt.Errorf("vidéo %d : %w", i+1, err)
		}
		rows = append(rows, model.VideoRecord{
			TmdbID:  tmdbID,
			Type:    model.TypeMovie,
			Name:    video.Name,
			URL:     video.URL,
			Lang:    video.Lang,
			Quality: video.Quality,
			Pub:     pub,
			Play:    play,
		})
	}
	return rows, nil
}

// checkVideo vérifie les champs obligatoires d'une source et résout
// pub/play. coerce=true applique les défauts série ; sinon l'absence est
// une erreur (chemin film).
func checkVideo(v VideoInput, coerce bool) (pub, play int, err error) {
	switch {
	case v.Name == "":
		return 0, 0, fmt.Errorf("champ name manquant")
	case v.URL == "":
		return 0, 0, fmt.Errorf("champ url manquant")
	case v.Lang == "":
		return 0, 0, fmt.Errorf("champ lang manquant")
	case v.Quality == "":
		return 0, 0, fmt.Errorf("champ quality manquant")
	}

	pub, err = resolveFlag("pub", v.Pub, DefaultPub, coerce)
	if err != nil {
		return 0, 0, err
	}
	play, err = resolveFlag("play", v.Play, DefaultPlay, coerce)
	if err != nil {
		return 0, 0, err
	}
	return pub, play, nil
}

func resolveFlag(name string, value *int, fallback int, coerce bool) (int, error) {
	if value == nil {
		if !coerce {
			return 0, fmt.Errorf("champ %s manquant", name)
		}
		return fallback, nil
	}
	if *value != 0 && *value != 1 {
		return 0, fmt.Errorf("champ %s hors domaine {0,1} : %d", name, *value)
	}
	return *value, nil
}

func parseNumber(key string) (int, error) {
	n, err := strconv.Atoi(key)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("nombre invalide : %q", key)
	}
	return n, nil
}
