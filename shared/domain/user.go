package domain

type User struct {
	Id             UserId     `json:"_id"`
	Email          string     `json:"email"`
	Password       string     `json:"password"`
	Username       string     `json:"username"`
	Name           string     `json:"name"`
	Surname        string     `json:"surname"`
	Avatar         string     `json:"avatar"`
	Biography      string     `json:"biography"`
	FavGames       []GameName `json:"favGames"`
	FollowersCount int        `json:"followersCount"`
	FollowingCount int        `json:"followingCount"`
	IsFollower     bool       `json:"isFollower"`
}
