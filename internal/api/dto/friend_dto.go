package dto

type FriendUserDTO struct {
	ID           uint64 `json:"id"`
	Username     string `json:"username"`
	AvatarURL    string `json:"avatar_url"`
	Bio          string `json:"bio,omitempty"`
	Location     string `json:"location,omitempty"`
	FriendStatus string `json:"friend_status"`
}

type FriendListsDTO struct {
	Friends     []*FriendUserDTO `json:"friends"`
	Incoming    []*FriendUserDTO `json:"incoming_requests"`
	Sent        []*FriendUserDTO `json:"sent_requests"`
	Suggestions []*FriendUserDTO `json:"suggestions"`
}
