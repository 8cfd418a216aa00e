// Package snapshot is the codec between the in-memory registry and its
// structured-text representation. Every mutation path publishes through it;
// import and export reuse the same document format, so round-trips are
// lossless by construction.
package snapshot

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/example/dispatchiq/internal/registry"
)

// ParseError reports a malformed snapshot document. Import paths that see a
// ParseError keep the previous registry; nothing is partially applied.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("malformed snapshot: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Encode serializes a registry to its canonical document form.
func Encode(r *registry.Registry) ([]byte, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return data, nil
}

// Decode parses a snapshot document back into a registry. Malformed input
// yields a *ParseError and no registry.
func Decode(data []byte) (*registry.Registry, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	var r registry.Registry
	if err := dec.Decode(&r); err != nil {
		return nil, &ParseError{Err: err}
	}

	if err := validate(&r); err != nil {
		return nil, &ParseError{Err: err}
	}

	// Keep collections non-nil so encode/decode round-trips are stable and
	// append paths never touch a nil slice.
	if r.Technicians == nil {
		r.Technicians = []*registry.Technician{}
	}
	if r.Parts == nil {
		r.Parts = []*registry.Part{}
	}
	if r.WorkOrders == nil {
		r.WorkOrders = []*registry.WorkOrder{}
	}
	for _, o := range r.WorkOrders {
		if o.PartsUsed == nil {
			o.PartsUsed = []registry.PartUsage{}
		}
	}

	return &r, nil
}

// validate rejects documents that parse as JSON but violate the entity
// invariants the engine relies on.
func validate(r *registry.Registry) error {
	seenParts := make(map[string]bool)
	for i, p := range r.Parts {
		if p == nil || p.ID == "" {
			return fmt.Errorf("parts[%d]: missing id", i)
		}
		if seenParts[p.ID] {
			return fmt.Errorf("parts[%d]: duplicate id %s", i, p.ID)
		}
		seenParts[p.ID] = true
		if p.OnHand < 0 {
			return fmt.Errorf("part %s: negative onHand %d", p.ID, p.OnHand)
		}
		if p.MinStock < 0 {
			return fmt.Errorf("part %s: negative minStock %d", p.ID, p.MinStock)
		}
	}

	seenTechs := make(map[string]bool)
	for i, t := range r.Technicians {
		if t == nil || t.ID == "" {
			return fmt.Errorf("technicians[%d]: missing id", i)
		}
		if seenTechs[t.ID] {
			return fmt.Errorf("technicians[%d]: duplicate id %s", i, t.ID)
		}
		seenTechs[t.ID] = true
	}

	seenOrders := make(map[string]bool)
	for i, o := range r.WorkOrders {
		if o == nil || o.ID == "" {
			return fmt.Errorf("workorders[%d]: missing id", i)
		}
		if seenOrders[o.ID] {
			return fmt.Errorf("workorders[%d]: duplicate id %s", i, o.ID)
		}
		seenOrders[o.ID] = true
		if !o.Status.Valid() {
			return fmt.Errorf("work order %s: unknown status %q", o.ID, o.Status)
		}
		if o.PhotoCount < 0 {
			return fmt.Errorf("work order %s: negative photoCount %d", o.ID, o.PhotoCount)
		}
		if o.DurationMinutes < 0 {
			return fmt.Errorf("work order %s: negative durationMinutes %d", o.ID, o.DurationMinutes)
		}
	}

	return nil
}
