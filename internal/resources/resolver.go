// Package resources answers classified location queries from a fixed
// healthcare corpus: pure lookup, filter and sort, no I/O.
package resources

import (
	"sort"
	"strings"

	"sehat-ai/backend/internal/model"
)

// Resolver serves resource lookups against the in-memory corpus.
type Resolver struct{}

func NewResolver() *Resolver {
	return &Resolver{}
}

// Resolve returns the categories selected by resourceType. Doctors are
// filtered by a case-insensitive substring match on specialization, unless it
// is empty or "any". Doctors, chemists and hospitals come back sorted
// ascending by distance; medicines keep corpus order. An unrecognized
// resourceType is treated as "all": the classifier already clamps its
// output, so anything else reaching this point should still produce a useful
// answer rather than an empty one.
func (r *Resolver) Resolve(resourceType, specialization string) model.ResourceBundle {
	known := resourceType == model.ResourceDoctors ||
		resourceType == model.ResourceChemists ||
		resourceType == model.ResourceMedicines ||
		resourceType == model.ResourceHospitals
	if !known {
		resourceType = model.ResourceAll
	}

	var bundle model.ResourceBundle

	if resourceType == model.ResourceAll || resourceType == model.ResourceDoctors {
		bundle.Doctors = filterDoctors(specialization)
		sort.SliceStable(bundle.Doctors, func(i, j int) bool {
			return bundle.Doctors[i].Distance < bundle.Doctors[j].Distance
		})
	}

	if resourceType == model.ResourceAll || resourceType == model.ResourceChemists {
		bundle.Chemists = append([]model.Chemist(nil), corpusChemists...)
		sort.SliceStable(bundle.Chemists, func(i, j int) bool {
			return bundle.Chemists[i].Distance < bundle.Chemists[j].Distance
		})
	}

	if resourceType == model.ResourceAll || resourceType == model.ResourceMedicines {
		bundle.Medicines = append([]model.Medicine(nil), corpusMedicines...)
	}

	if resourceType == model.ResourceAll || resourceType == model.ResourceHospitals {
		bundle.Hospitals = append([]model.Hospital(nil), corpusHospitals...)
		sort.SliceStable(bundle.Hospitals, func(i, j int) bool {
			return bundle.Hospitals[i].Distance < bundle.Hospitals[j].Distance
		})
	}

	return bundle
}

func filterDoctors(specialization string) []model.Doctor {
	spec := strings.ToLower(strings.TrimSpace(specialization))
	if spec == "" || spec == "any" {
		return append([]model.Doctor(nil), corpusDoctors...)
	}

	filtered := make([]model.Doctor, 0, len(corpusDoctors))
	for _, doc := range corpusDoctors {
		if strings.Contains(strings.ToLower(doc.Specialization), spec) {
			filtered = append(filtered, doc)
		}
	}
	return filtered
}
