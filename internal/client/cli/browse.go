package cli

import (
	"context"
	"strconv"
	"strings"

	"github.com/kan-1337/movie-explorer/internal/client/models"
)

// parsePage reads an optional trailing page argument, defaulting to 1.
func parsePage(args []string) (int, bool) {
	if len(args) == 0 {
		return 1, true
	}
	page, err := strconv.Atoi(args[len(args)-1])
	if err != nil || page < 1 {
		return 0, false
	}
	return page, true
}

func (a *App) printPage(page *models.MoviePage) {
	for _, m := range page.Results {
		printfFn("%8d  %-42s %s  %4.1f (%d votes)\n",
			m.ID, truncate(m.Title, 42), releaseYear(m.ReleaseDate), m.VoteAverage, m.VoteCount)
	}
	printfFn("page %d of %d (%d results)\n", page.Page, page.TotalPages, page.TotalResults)
}

// Popular lists one page of currently popular movies.
func (a *App) Popular(ctx context.Context, args []string) error {
	page, ok := parsePage(args)
	if !ok {
		printlnFn("Usage: popular [page]")
		return nil
	}

	result, err := a.movies.Popular(ctx, page)
	if err != nil {
		printlnFn("Error:", friendlyError(err))
		return err
	}
	a.printPage(result)
	return nil
}

// Search runs a text search; the last argument is treated as a page number
// when it parses as one.
func (a *App) Search(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("Usage: search <text> [page]")
		return nil
	}

	page := 1
	terms := args
	if len(args) > 1 {
		if n, err := strconv.Atoi(args[len(args)-1]); err == nil && n >= 1 {
			page = n
			terms = args[:len(args)-1]
		}
	}

	result, err := a.movies.Search(ctx, strings.Join(terms, " "), page)
	if err != nil {
		printlnFn("Error:", friendlyError(err))
		return err
	}
	a.printPage(result)
	return nil
}

// Show prints the full record for one movie.
func (a *App) Show(ctx context.Context, args []string) error {
	if len(args) != 1 {
		printlnFn("Usage: show <id>")
		return nil
	}
	movieID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		printlnFn("Usage: show <id>")
		return nil
	}

	details, err := a.movies.Details(ctx, movieID)
	if err != nil {
		printlnFn("Error:", friendlyError(err))
		return err
	}

	printfFn("%s (%s)\n", details.Title, releaseYear(details.ReleaseDate))
	printfFn("Rating: %.1f (%d votes)\n", details.VoteAverage, details.VoteCount)
	if details.Runtime > 0 {
		printfFn("Runtime: %d min\n", details.Runtime)
	}
	if len(details.Genres) > 0 {
		names := make([]string, len(details.Genres))
		for i, g := range details.Genres {
			names[i] = g.Name
		}
		printfFn("Genres: %s\n", strings.Join(names, ", "))
	}
	if details.Overview != "" {
		printlnFn(details.Overview)
	}
	if url := a.imageURL(details.PosterPath); url != "" {
		printfFn("Poster: %s\n", url)
	}
	return nil
}

// imageURL assembles a full image URL from a catalog path, or "" when the
// movie has no image.
func (a *App) imageURL(path string) string {
	if path == "" {
		return ""
	}
	return a.config.ImageBaseURL + path
}
