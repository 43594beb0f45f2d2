package domain

import "time"

type Post struct {
	Id        PostId    `json:"_id"`
	Game      GameName  `json:"game"`
	Rating    int       `json:"rating"`
	Review    Review    `json:"review"`
	Photo     string    `json:"photo,omitempty"` // URL of the stored photo, empty when none was attached
	Author    string    `json:"author,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type Game struct {
	Id   GameId   `json:"_id"`
	Name GameName `json:"name"`
}

// GameNames returns the display names of games in order.
func GameNames(games []Game) []GameName {
	names := make([]GameName, 0, len(games))
	for _, g := range games {
		names = append(names, g.Name)
	}
	return names
}
