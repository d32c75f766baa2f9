package filters

// URI parameters for the champion routes.
type ChampionURIParams struct {
	Slug string `uri:"slug" binding:"required"`
}

// Query parameters for the similarity route.
type SimilarityQueryParams struct {
	Count int `form:"count,default=6" binding:"omitempty,min=1,max=20"`
}
