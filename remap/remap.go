// Package remap rewrites the material assignments of imported model assets.
//
// Model files carry named material slots. An importer may map each slot to
// an external material asset. Collect reads the slots of a set of models
// into one table keyed by slot name; Apply writes an edited table back.
package remap

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/gogpu/uifx"
)

// SourceAsset identifies a material slot embedded in a model file.
type SourceAsset struct {
	Type string
	Name string
}

// MaterialRef points at an external material asset. A zero GUID means the
// slot is unmapped.
type MaterialRef struct {
	GUID uuid.UUID
	Path string
}

// IsZero reports whether r refers to no material.
func (r MaterialRef) IsZero() bool { return r.GUID == uuid.Nil }

func (r MaterialRef) String() string {
	if r.IsZero() {
		return "<none>"
	}
	if r.Path == "" {
		return r.GUID.String()
	}
	return r.Path + " (" + r.GUID.String() + ")"
}

// MaterialMap is one row of a remap table: a material slot name and the
// external material it is assigned to.
type MaterialMap struct {
	Name     string
	Material MaterialRef
}

// Importer is the import settings of one model asset.
type Importer interface {
	// Path identifies the asset in logs and errors.
	Path() string

	// SourceMaterials lists the material slots the model defines.
	SourceMaterials() ([]SourceAsset, error)

	// ExternalObjects returns the current slot remaps.
	ExternalObjects() map[SourceAsset]MaterialRef

	RemoveRemap(src SourceAsset)
	AddRemap(src SourceAsset, ref MaterialRef)

	// SaveAndReimport persists the settings and reimports the model.
	SaveAndReimport() error
}

// Collect builds a remap table for importers: one row per distinct slot
// name, in the order first seen, holding the material that slot is
// currently remapped to. Importers whose materials cannot be read are
// logged and skipped.
func Collect(importers []Importer) []MaterialMap {
	seen := make(map[string]struct{})
	var table []MaterialMap
	for _, imp := range importers {
		if imp == nil {
			continue
		}
		srcs, err := imp.SourceMaterials()
		if err != nil {
			uifx.Logger().Warn("remap: skipping importer", "path", imp.Path(), "error", err)
			continue
		}
		current := imp.ExternalObjects()
		for _, s := range srcs {
			if _, ok := seen[s.Name]; ok {
				continue
			}
			seen[s.Name] = struct{}{}
			table = append(table, MaterialMap{Name: s.Name, Material: current[s]})
		}
	}
	return table
}

// Report summarizes an Apply run.
type Report struct {
	// Updated counts importers whose remaps changed and were saved.
	Updated int
	// Skipped counts importers that needed no change.
	Skipped int
	// Errors holds one error per importer that failed.
	Errors []error
}

// Err returns the first error, or nil.
func (r Report) Err() error {
	if len(r.Errors) == 0 {
		return nil
	}
	return r.Errors[0]
}

// Apply writes table to importers. Every slot whose name has a row is
// un-remapped and, when the row holds a material, remapped to it. Slots
// without a row are left alone. Each importer is saved once, and only if
// its remaps changed. A failing importer is recorded in the report and does
// not stop the others.
func Apply(importers []Importer, table []MaterialMap) Report {
	byName := make(map[string]MaterialRef, len(table))
	for _, row := range table {
		byName[row.Name] = row.Material
	}

	var rep Report
	for _, imp := range importers {
		if imp == nil {
			continue
		}
		changed, err := applyOne(imp, byName)
		switch {
		case err != nil:
			uifx.Logger().Warn("remap: importer failed", "path", imp.Path(), "error", err)
			rep.Errors = append(rep.Errors, err)
		case changed:
			rep.Updated++
		default:
			rep.Skipped++
		}
	}
	return rep
}

func applyOne(imp Importer, byName map[string]MaterialRef) (bool, error) {
	srcs, err := imp.SourceMaterials()
	if err != nil {
		return false, fmt.Errorf("remap: %s: read materials: %w", imp.Path(), err)
	}

	current := imp.ExternalObjects()
	changed := false
	for _, src := range srcs {
		want, ok := byName[src.Name]
		if !ok {
			continue
		}
		old, had := current[src]
		mapped := !want.IsZero()

		if had {
			imp.RemoveRemap(src)
		}
		if mapped {
			imp.AddRemap(src, want)
		}

		if had != mapped || (mapped && old != want) {
			changed = true
			uifx.Logger().Debug("remap: slot", "path", imp.Path(), "slot", src.Name,
				"from", old.String(), "to", want.String())
		}
	}

	if !changed {
		return false, nil
	}
	if err := imp.SaveAndReimport(); err != nil {
		return false, fmt.Errorf("remap: %s: save: %w", imp.Path(), err)
	}
	return true, nil
}
