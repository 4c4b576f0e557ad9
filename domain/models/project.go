package models

import "time"

type ProjectCreate struct {
	Name string `json:"project_name" binding:"required"`
}

type ProjectData struct {
	Id        int       `json:"id"`
	UserId    int       `json:"-"`
	Name      string    `json:"project_name"`
	CreatedAt time.Time `json:"created_at"`
}
