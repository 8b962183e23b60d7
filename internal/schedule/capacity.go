package schedule

import "github.com/afontana/shopfloor/internal/domain"

// CapacityRegistry is the immutable capacity configuration: cutting limits
// in pieces per day keyed by (material, structure type), production budgets
// in minutes per day keyed by material. Each material owns an independent
// cutting machine and an independent production pool.
type CapacityRegistry struct {
	Cutting    map[domain.Material]map[domain.StructureType]int
	Production map[domain.Material]int
}

// DefaultCapacity returns the registry the line runs with when no
// configuration overrides it.
func DefaultCapacity() CapacityRegistry {
	return CapacityRegistry{
		Cutting: map[domain.Material]map[domain.StructureType]int{
			domain.MaterialA: {
				domain.StructureHinged:  15,
				domain.StructureSliding: 10,
				domain.StructureSpecial: 5,
			},
			domain.MaterialB: {
				domain.StructureHinged:  12,
				domain.StructureSliding: 10,
				domain.StructureSpecial: 4,
			},
		},
		Production: map[domain.Material]int{
			domain.MaterialA: 4500,
			domain.MaterialB: 3000,
		},
	}
}

// CuttingLimit returns the daily piece limit for (m, st). A missing or
// non-positive entry is a configuration error, not a zero-capacity day:
// a zero limit could never finish pending work.
func (c CapacityRegistry) CuttingLimit(m domain.Material, st domain.StructureType) (int, error) {
	limits, ok := c.Cutting[m]
	if !ok {
		return 0, &CapacityConfigError{Material: m, Structure: st}
	}
	limit, ok := limits[st]
	if !ok || limit <= 0 {
		return 0, &CapacityConfigError{Material: m, Structure: st}
	}
	return limit, nil
}

// ProductionLimit returns the daily minute budget for material m.
func (c CapacityRegistry) ProductionLimit(m domain.Material) (int, error) {
	limit, ok := c.Production[m]
	if !ok || limit <= 0 {
		return 0, &CapacityConfigError{Material: m}
	}
	return limit, nil
}
