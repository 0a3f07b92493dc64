package playlist

// Default is the catalog shipped with the homepage.
// Sources are relative to the configured audio root.
func Default() *Catalog {
	return NewCatalog(
		Track{
			ID:     "song1",
			Title:  "Pole Dance (봉춤을 추네)_잔나비",
			Source: "audio/Pole Dance (봉춤을 추네)_잔나비.mp3",
		},
		Track{
			ID:     "song2",
			Title:  "SIMPLE (Feat. JUNNY, 창모)",
			Source: "audio/DAUL, Noair, plan8, CHANNEL 201 - SIMPLE (Feat. JUNNY, 창모 (CHANGMO)).mp3",
		},
		Track{
			ID:     "song3",
			Title:  "거북이 - 비행기",
			Source: "audio/Turtles(거북이) - Airplane(비행기).mp3",
		},
	)
}
