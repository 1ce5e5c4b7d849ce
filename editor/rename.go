package editor

import (
	"errors"

	"github.com/Drominaman/svgmap/annotation"
	"github.com/Drominaman/svgmap/svgdom"
)

// ErrRegionNotFound reports a rename against an identifier no element
// in the document carries.
var ErrRegionNotFound = errors.New("editor: no region with that identifier")

// RenameRegion changes a region's identifier everywhere it is
// referenced: the element's id attribute, the annotation record key,
// the selection, and the per-region interaction state. The rename is
// all-or-nothing; every validation runs before the first mutation, so
// a failure leaves the session untouched.
func (s *Session) RenameRegion(oldID, newID string) error {
	if err := annotation.ValidateID(newID); err != nil {
		return err
	}
	node := s.doc.RegionByID(oldID)
	if node == nil {
		return ErrRegionNotFound
	}
	if holder := s.doc.RegionByID(newID); holder != nil && holder != node {
		return annotation.ErrIDTaken
	}
	if err := s.store.Rename(oldID, newID); err != nil {
		return err
	}
	svgdom.SetAttr(node, "id", newID)
	if oldID == newID {
		return nil
	}
	if st, ok := s.states[oldID]; ok {
		s.states[newID] = st
		delete(s.states, oldID)
	}
	if orig, ok := s.strokes[oldID]; ok {
		s.strokes[newID] = orig
		delete(s.strokes, oldID)
	}
	if s.bound[oldID] {
		s.bound[newID] = true
		delete(s.bound, oldID)
	}
	if s.selected == oldID {
		s.selected = newID
		s.notify(newID)
	}
	return nil
}
