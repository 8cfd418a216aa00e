package registry

// Registry is one immutable snapshot of the full entity state. Mutation
// paths clone the current snapshot, edit the clone, bump Version, and
// publish; a snapshot already handed to a reader is never written again.
//
// Collection order is meaningful: low-stock listings and identifier lookup
// walk the slices in insertion order.
type Registry struct {
	Version     int           `json:"version"`
	Technicians []*Technician `json:"technicians"`
	Parts       []*Part       `json:"parts"`
	WorkOrders  []*WorkOrder  `json:"workorders"`
	Settings    Settings      `json:"settings"`
}

// Clone returns a deep copy of the registry. The copy shares nothing with
// the original, so editing it cannot leak into snapshots already published.
func (r *Registry) Clone() *Registry {
	next := &Registry{
		Version:     r.Version,
		Technicians: make([]*Technician, len(r.Technicians)),
		Parts:       make([]*Part, len(r.Parts)),
		WorkOrders:  make([]*WorkOrder, len(r.WorkOrders)),
		Settings:    r.Settings,
	}

	for i, t := range r.Technicians {
		c := *t
		next.Technicians[i] = &c
	}
	for i, p := range r.Parts {
		c := *p
		next.Parts[i] = &c
	}
	for i, o := range r.WorkOrders {
		c := *o
		c.PartsUsed = make([]PartUsage, len(o.PartsUsed))
		copy(c.PartsUsed, o.PartsUsed)
		next.WorkOrders[i] = &c
	}

	return next
}

// Technician looks up a technician by ID.
func (r *Registry) Technician(id string) (*Technician, bool) {
	for _, t := range r.Technicians {
		if t.ID == id {
			return t, true
		}
	}
	return nil, false
}

// Part looks up a part by SKU.
func (r *Registry) Part(id string) (*Part, bool) {
	for _, p := range r.Parts {
		if p.ID == id {
			return p, true
		}
	}
	return nil, false
}

// Order looks up a work order by ID.
func (r *Registry) Order(id string) (*WorkOrder, bool) {
	for _, o := range r.WorkOrders {
		if o.ID == id {
			return o, true
		}
	}
	return nil, false
}

// MaxOrderNumber returns the highest numeric order ID component, for
// sequential ID generation. Random tokens are skipped.
func (r *Registry) MaxOrderNumber(parse func(id string) int) int {
	max := 0
	for _, o := range r.WorkOrders {
		if n := parse(o.ID); n > max {
			max = n
		}
	}
	return max
}

// SyncTechnician recomputes the derived availability fields of a technician
// from the work orders that reference it. The most recently touched active
// order wins; with none the technician is available. Unknown IDs are a no-op.
func (r *Registry) SyncTechnician(id string) {
	tech, ok := r.Technician(id)
	if !ok {
		return
	}

	var current *WorkOrder
	for _, o := range r.WorkOrders {
		if o.AssignedTechnicianID != id || !o.Active() {
			continue
		}
		if current == nil || o.UpdatedAt.After(current.UpdatedAt) {
			current = o
		}
	}

	if current == nil {
		tech.Status = TechAvailable
		tech.CurrentOrderID = ""
		return
	}
	tech.Status = TechOnJob
	tech.CurrentOrderID = current.ID
}
