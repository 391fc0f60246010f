package models

import (
	"bytes"
	"encoding/json"
)

// Movie is a single catalog entry, in the remote service's wire shape.
type Movie struct {
	ID           int64   `json:"id"`
	Title        string  `json:"title"`
	Overview     string  `json:"overview"`
	PosterPath   string  `json:"poster_path"`
	BackdropPath string  `json:"backdrop_path"`
	VoteAverage  float64 `json:"vote_average"`
	VoteCount    int64   `json:"vote_count"`
	ReleaseDate  string  `json:"release_date"`
}

// Genre is a catalog genre tag attached to movie details.
type Genre struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// MovieDetails extends Movie with the fields only present on the
// single-movie endpoint.
type MovieDetails struct {
	Movie
	Runtime int     `json:"runtime"`
	Genres  []Genre `json:"genres"`
}

// MoviePage is one page of listing or search results.
type MoviePage struct {
	Page         int     `json:"page"`
	Results      []Movie `json:"results"`
	TotalPages   int     `json:"total_pages"`
	TotalResults int     `json:"total_results"`
}

// RatedValue is the user's rating for one movie.
type RatedValue struct {
	Value float64 `json:"value"`
}

// AccountState reports the current user's relationship to one movie.
// Rated is nil when the user has not rated it; a rating of 0 is therefore
// distinguishable from no rating at all.
type AccountState struct {
	ID    int64       `json:"id"`
	Rated *RatedValue `json:"rated"`
}

// UnmarshalJSON handles the remote service's encoding of the rated field,
// which is the literal false when no rating exists and an object otherwise.
func (s *AccountState) UnmarshalJSON(data []byte) error {
	type wire struct {
		ID    int64           `json:"id"`
		Rated json.RawMessage `json:"rated"`
	}
	var w wire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	s.ID = w.ID
	s.Rated = nil

	raw := bytes.TrimSpace(w.Rated)
	if len(raw) == 0 || bytes.Equal(raw, []byte("false")) || bytes.Equal(raw, []byte("null")) {
		return nil
	}
	var rv RatedValue
	if err := json.Unmarshal(raw, &rv); err != nil {
		return err
	}
	s.Rated = &rv
	return nil
}
