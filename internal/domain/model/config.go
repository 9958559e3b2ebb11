package model

// EntityMapping ties a Home Assistant entity to the position name it is
// recorded under.
type EntityMapping struct {
	EntityID     string `yaml:"entity"`
	PositionName string `yaml:"position"`
}

type Config struct {
	HassURL     string
	HassToken   string
	PositionBin string
	Entities    []EntityMapping // Ordered; each synced exactly once per run
}

// DefaultEntities is the built-in mapping used when no entities file exists.
// Edit entities.yaml to match your Home Assistant entities instead.
func DefaultEntities() []EntityMapping {
	return []EntityMapping{
		{EntityID: "person.harper", PositionName: "harper"},
	}
}
