package model

import "github.com/ronin-planets/backend/internal/entity"

type GetCatalogRequest struct{}

type GetCatalogResponse struct {
	Planets           []entity.Planet `json:"planets"`
	Resources         []string        `json:"resources"`
	Recipes           []entity.Recipe `json:"recipes"`
	MaxKnowledgeLevel int             `json:"max_knowledge_level"`
	CooldownMs        int64           `json:"cooldown_ms"`
}

type MineRequest struct {
	TokenID  string `json:"token_id"`
	PlanetID int    `json:"planet_id"`
}

type MineResponse struct {
	Resource      string `json:"resource"`
	Mined         int64  `json:"mined"`
	Total         int64  `json:"total"`
	CooldownEndMs int64  `json:"cooldown_end_ms"`
}

type LearnRequest struct {
	TokenID  string `json:"token_id"`
	PlanetID int    `json:"planet_id"`
}

type LearnResponse struct {
	Resource      string `json:"resource"`
	Cost          int    `json:"cost"`
	Level         int    `json:"level"`
	CooldownEndMs int64  `json:"cooldown_end_ms"`
}

type CraftRequest struct {
	RecipeID int `json:"recipe_id"`
}

type CraftResponse struct {
	Recipe    entity.Recipe    `json:"recipe"`
	Points    int64            `json:"points"`
	Resources map[string]int64 `json:"resources"`
}
