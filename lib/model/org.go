package model

type Team struct {
	ID   ID     `json:"id"`
	Name string `json:"name"`
}

type Role struct {
	ID   ID     `json:"id"`
	Name string `json:"name"`
}

type Skill struct {
	ID   ID     `json:"id"`
	Name string `json:"name"`
}

type Client struct {
	ID   ID     `json:"id"`
	Name string `json:"name"`
}
