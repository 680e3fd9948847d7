package docimport

import (
	"fmt"

	"docweld/internal/domain"
	models "docweld/internal/domain/models/docsystem"
	docsysSvc "docweld/internal/domain/services/docsystem"
)

// resolveDestination maps a logical destination to the scoping key set
// documents must carry there. The import context is passed through without
// validation; a missing required field surfaces later as a malformed scope.
func resolveDestination(destType models.DestinationType, destID string, importCtx docsysSvc.ImportContext) (models.Destination, error) {
	switch destType {
	case models.DestinationProject:
		return models.Destination{
			Type: destType,
			Keys: models.ScopeKeys{ProjectID: destID},
		}, nil
	case models.DestinationLibrary:
		return models.Destination{
			Type: destType,
			Keys: models.ScopeKeys{LibraryID: destID},
		}, nil
	case models.DestinationWeldLog:
		return models.Destination{
			Type: destType,
			Keys: models.ScopeKeys{
				WeldLogID: destID,
				ProjectID: importCtx.ProjectID,
			},
		}, nil
	case models.DestinationWeld:
		return models.Destination{
			Type: destType,
			Keys: models.ScopeKeys{
				WeldID:    destID,
				WeldLogID: importCtx.WeldLogID,
				ProjectID: importCtx.ProjectID,
			},
		}, nil
	default:
		return models.Destination{}, fmt.Errorf("%w: %q", domain.ErrInvalidDestinationType, destType)
	}
}
