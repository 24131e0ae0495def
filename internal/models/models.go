package models

import (
	"time"
)

type Role string

const (
	RoleSenior Role = "senior"
	RoleJunior Role = "junior"
)

type FilterType string

const (
	FilterAll     FilterType = "all"
	FilterSeniors FilterType = "seniors"
	FilterJuniors FilterType = "juniors"
)

type SortMode string

const (
	SortLatest  SortMode = "latest"
	SortPopular SortMode = "popular"
)

type User struct {
	UserID       string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Avatar       string    `json:"avatar,omitempty"`
	Department   string    `json:"department"`
	Year         string    `json:"year"`
	Role         Role      `json:"role"`
	Bio          string    `json:"bio,omitempty"`
	PasswordHash string    `json:"passwordHash,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

type Post struct {
	PostID    string    `json:"id"`
	Content   string    `json:"content"`
	Images    []string  `json:"images,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	AuthorID  string    `json:"authorId"`
	Author    *User     `json:"author,omitempty"`
	Likes     []string  `json:"likes"`
	Comments  []Comment `json:"comments"`
	Tags      []string  `json:"tags"`
}

type Comment struct {
	CommentID string    `json:"id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	AuthorID  string    `json:"authorId"`
	Author    *User     `json:"author,omitempty"`
	PostID    string    `json:"postId"`
	ParentID  string    `json:"parentId,omitempty"`
	Likes     []string  `json:"likes"`
}
