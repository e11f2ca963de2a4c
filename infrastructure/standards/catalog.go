package standards

import (
	_ "embed"

	jsoniter "github.com/json-iterator/go"
	"photogate.io/entities"
)

//go:embed catalog.json
var catalogJSON []byte

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func loadEmbeddedCatalog() ([]entities.PhotoStandard, error) {
	var catalog []entities.PhotoStandard
	if err := json.Unmarshal(catalogJSON, &catalog); err != nil {
		return nil, err
	}
	return catalog, nil
}
