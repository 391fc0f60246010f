package tmdb

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/kan-1337/movie-explorer/internal/client/models"
)

// PopularMovies lists one page of currently popular movies.
func (c *Client) PopularMovies(ctx context.Context, page int) (*models.MoviePage, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))

	var result models.MoviePage
	if err := c.do(ctx, http.MethodGet, "/movie/popular", q, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// SearchMovies runs a text search over the catalog.
func (c *Client) SearchMovies(ctx context.Context, query string, page int) (*models.MoviePage, error) {
	q := url.Values{}
	q.Set("query", query)
	q.Set("page", strconv.Itoa(page))

	var result models.MoviePage
	if err := c.do(ctx, http.MethodGet, "/search/movie", q, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// MovieDetails fetches the full record for one movie.
func (c *Client) MovieDetails(ctx context.Context, movieID int64) (*models.MovieDetails, error) {
	var details models.MovieDetails
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/movie/%d", movieID), nil, nil, &details); err != nil {
		return nil, err
	}
	return &details, nil
}
