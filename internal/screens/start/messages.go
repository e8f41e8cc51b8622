package start

import (
	"github.com/varunsridharan/quizdeck/internal/quiz"
	"github.com/varunsridharan/quizdeck/internal/store"
)

// packLoadedMsg is sent when the quiz pack load attempt finishes.
type packLoadedMsg struct {
	Pack      *quiz.Pack
	Saved     *store.ProgressRecord
	SavedMode string
	Err       error
}
