package domain

type AuthState struct {
	Status         Status `json:"status"`
	LoginMsg       string `json:"loginMsg"`
	LoginStatus    Status `json:"loginStatus"`
	RegisterMsg    string `json:"registerMsg"`
	RegisterStatus Status `json:"registerStatus"`
}

type PostsState struct {
	Status             Status             `json:"status"`
	Posts              []Post             `json:"posts"`
	PostsCount         int                `json:"postsCount"`
	PostCreationStatus PostCreationStatus `json:"postCreationStatus"`
	PostCreationMsg    string             `json:"postCreationMsg"`
	PostGetStatus      Status             `json:"postGetStatus"`
	PostGetMsg         string             `json:"postGetMsg"`
	FilePreview        string             `json:"filePreview"`
}

type UsersState struct {
	Status             Status `json:"status"`
	User               User   `json:"user"`
	GetOneUserStatus   Status `json:"getOneUserStatus"`
	UserPosts          []Post `json:"userPosts"`
	UserPostsCount     int    `json:"userPostsCount"`
	GetUserPostsStatus Status `json:"getUserPostsStatus"`
	FollowUserStatus   Status `json:"followUserStatus"`
}

type GamesState struct {
	Status         Status `json:"status"`
	Games          []Game `json:"games"`
	GamesCount     int    `json:"gamesCount"`
	GetGamesStatus Status `json:"getGamesStatus"`
	GetGamesMsg    string `json:"getGamesMsg"`
}

// RootState is the whole client state of one browser session.
// Reducers never modify slices in place, so a copied RootState can be
// read without holding the store lock.
type RootState struct {
	Auth  AuthState  `json:"auth"`
	Posts PostsState `json:"posts"`
	Users UsersState `json:"users"`
	Games GamesState `json:"games"`
}

func DefaultAuthState() AuthState {
	return AuthState{
		Status:         StatusIdle,
		LoginStatus:    StatusIdle,
		RegisterStatus: StatusIdle,
	}
}

func DefaultPostsState() PostsState {
	return PostsState{
		Status:             StatusIdle,
		Posts:              []Post{},
		PostCreationStatus: PostCreationIdle,
		PostGetStatus:      StatusIdle,
	}
}

func DefaultUsersState() UsersState {
	return UsersState{
		Status:             StatusIdle,
		User:               User{FavGames: []GameName{}},
		GetOneUserStatus:   StatusIdle,
		UserPosts:          []Post{},
		GetUserPostsStatus: StatusIdle,
		FollowUserStatus:   StatusIdle,
	}
}

func DefaultGamesState() GamesState {
	return GamesState{
		Status:         StatusIdle,
		Games:          []Game{},
		GetGamesStatus: StatusIdle,
	}
}

// DefaultState is the empty, idle state of a fresh session.
func DefaultState() RootState {
	return RootState{
		Auth:  DefaultAuthState(),
		Posts: DefaultPostsState(),
		Users: DefaultUsersState(),
		Games: DefaultGamesState(),
	}
}
