package motion

import "errors"

var (
	// ErrTargetGone is returned by a delegate Factory when the object it would
	// animate no longer exists. The delegate treats it as an already finished
	// animation rather than a failure. Wrap it freely; it is matched with
	// errors.Is.
	ErrTargetGone = errors.New("motion: animation target no longer exists")

	// ErrDuplicateUpdater is returned by Driver.Add when the updater is
	// already registered.
	ErrDuplicateUpdater = errors.New("motion: updater already registered")

	// ErrNilUpdater is returned by Driver.Add for a nil updater.
	ErrNilUpdater = errors.New("motion: nil updater")
)
