package docimport

import (
	"context"
	"fmt"
	"path"

	"docweld/internal/domain"
	docsysSvc "docweld/internal/domain/services/docsystem"
)

// copiedRefs holds the destination storage refs after copying a document's
// assets. Empty fields mean the source had no corresponding asset.
type copiedRefs struct {
	storageRef      string
	thumbStorageRef string
}

// destAssetPath builds the destination key for a copied asset. The new
// document owns a prefix keyed by its id; the basename carries over from the
// source ref.
func destAssetPath(docID, sourceRef string) string {
	return fmt.Sprintf("documents/%s/%s", docID, path.Base(sourceRef))
}

// copyDocumentAssets copies the main file and thumbnail for one document into
// the new document's storage prefix. A source with no storage ref is copied
// as metadata only. Any failed copy aborts the whole document; a thumbnail
// failure after a successful main copy leaves the main copy in place.
func (s *importService) copyDocumentAssets(ctx context.Context, source *docsysSvc.SourceDocument, newDocID string) (copiedRefs, error) {
	var refs copiedRefs

	if source.StorageRef != "" {
		dest := destAssetPath(newDocID, source.StorageRef)
		if err := s.store.Copy(ctx, source.StorageRef, dest); err != nil {
			return copiedRefs{}, &domain.AssetCopyError{StorageRef: source.StorageRef, Err: err}
		}
		refs.storageRef = dest
	}

	if source.ThumbStorageRef != "" {
		dest := destAssetPath(newDocID, source.ThumbStorageRef)
		if err := s.store.Copy(ctx, source.ThumbStorageRef, dest); err != nil {
			if refs.storageRef != "" {
				s.logger.Warn("thumbnail copy failed after main asset copy, main copy left in place",
					"document_id", newDocID,
					"storage_ref", refs.storageRef,
				)
			}
			return copiedRefs{}, &domain.AssetCopyError{StorageRef: source.ThumbStorageRef, Err: err}
		}
		refs.thumbStorageRef = dest
	}

	return refs, nil
}
