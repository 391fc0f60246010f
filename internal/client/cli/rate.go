package cli

import (
	"context"
	"strconv"
)

// Rate submits a rating for a movie. The value is normalized by the API
// client to the service's 0.5-step scale.
func (a *App) Rate(ctx context.Context, args []string) error {
	if len(args) != 2 {
		printlnFn("Usage: rate <id> <value>   (value between 0.5 and 10)")
		return nil
	}
	movieID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		printlnFn("Usage: rate <id> <value>")
		return nil
	}
	value, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		printlnFn("Usage: rate <id> <value>")
		return nil
	}

	ok, err := a.movies.Rate(ctx, movieID, value)
	if err != nil {
		printlnFn("Error:", friendlyError(err))
		return err
	}
	if ok {
		printlnFn("Rating saved.")
	} else {
		printlnFn("The service did not accept the rating.")
	}
	return nil
}

// Unrate removes the user's rating for a movie.
func (a *App) Unrate(ctx context.Context, args []string) error {
	if len(args) != 1 {
		printlnFn("Usage: unrate <id>")
		return nil
	}
	movieID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		printlnFn("Usage: unrate <id>")
		return nil
	}

	ok, err := a.movies.Unrate(ctx, movieID)
	if err != nil {
		printlnFn("Error:", friendlyError(err))
		return err
	}
	if ok {
		printlnFn("Rating removed.")
	} else {
		printlnFn("The service did not remove the rating.")
	}
	return nil
}

// Rating prints the user's current rating for a movie, if any.
func (a *App) Rating(ctx context.Context, args []string) error {
	if len(args) != 1 {
		printlnFn("Usage: rating <id>")
		return nil
	}
	movieID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		printlnFn("Usage: rating <id>")
		return nil
	}

	state, err := a.movies.RatingFor(ctx, movieID)
	if err != nil {
		printlnFn("Error:", friendlyError(err))
		return err
	}
	if state.Rated == nil {
		printlnFn("You have not rated this movie.")
	} else {
		printfFn("Your rating: %.1f\n", state.Rated.Value)
	}
	return nil
}
