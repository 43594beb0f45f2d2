package apiclient

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gamefeed/gamefeed/shared/api"
	"github.com/gamefeed/gamefeed/shared/domain"
	internal_errors "github.com/gamefeed/gamefeed/shared/errors"
	"github.com/gamefeed/gamefeed/shared/utils"
)

func (c *APIClient) ListGames(ctx context.Context) ([]domain.Game, error) {
	resp, err := c.do(ctx, http.MethodGet, "/v1/games", nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &internal_errors.ErrorWithStatusCode{
			Message: "failed to fetch games", StatusCode: resp.StatusCode,
		}
	}

	var list api.GameListResponse
	if err := utils.Decode(resp.Body, &list); err != nil {
		return nil, fmt.Errorf("cannot decode game list: %w", err)
	}
	return list.Games, nil
}
