package actor

import (
	"testing"

	"github.com/lukaszgryglicki/detnav/internal/navigation"
	"github.com/lukaszgryglicki/detnav/stepper"
)

type recordingActor struct {
	ran *bool
}

func (a recordingActor) Act(state *navigation.State, _ stepper.Track) { *a.ran = true }

func TestChainStopsAfterAbort(t *testing.T) {
	state := navigation.NewState(0)
	var firstRan, secondRan bool

	chain := Chain{
		PathLimitAborter{MaxPath: 0},
		recordingActor{ran: &firstRan},
		recordingActor{ran: &secondRan},
	}
	chain.Act(state, stepper.Track{PathLength: 0})

	if firstRan || secondRan {
		t.Fatalf("expected the chain to stop once the aborter clears Heartbeat: first=%v second=%v", firstRan, secondRan)
	}
	if state.Heartbeat {
		t.Fatalf("expected heartbeat false after the path limit aborter")
	}
}

func TestChainRunsEveryActorWhenNoneAbort(t *testing.T) {
	state := navigation.NewState(0)
	var firstRan, secondRan bool

	chain := Chain{
		recordingActor{ran: &firstRan},
		recordingActor{ran: &secondRan},
	}
	chain.Act(state, stepper.Track{})

	if !firstRan || !secondRan {
		t.Fatalf("expected every actor to run: first=%v second=%v", firstRan, secondRan)
	}
}
