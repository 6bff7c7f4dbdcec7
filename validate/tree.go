package validate

import (
	"golang.org/x/sync/errgroup"

	"github.com/Alphish/ston-go/model"
)

// kindCheck is the shallow per-child check §4.5 allows: existence and
// recognized variant, never the child's own deep well-formedness. That
// deeper pass is the caller's job, one call to Entity per child, should it
// choose to make one.
func kindCheck(e model.Entity) error {
	if e == nil {
		return &NullArgumentError{Field: "entity"}
	}
	switch e.(type) {
	case *model.SimpleEntity, *model.ComplexEntity, *model.ReferenceEntity:
		return nil
	default:
		return &ImplementationMismatchError{Context: "Entity"}
	}
}

// Tree shallow-checks every entity in entities concurrently, the way
// Generator.generateDDLs fans independent statements out across an
// errgroup.Group. It returns the first error encountered, if any.
func Tree(entities []model.Entity) error {
	g := new(errgroup.Group)
	for _, e := range entities {
		e := e
		g.Go(func() error {
			return kindCheck(e)
		})
	}
	return g.Wait()
}
