package format

import (
	"fmt"

	"github.com/emeraldtools/savekit/internal/buf"
)

const (
	// PlayerNameLen is the fixed width of the encoded player name.
	PlayerNameLen = 8

	// Trainer field offsets within SaveBlock2.
	//
	//	Offset  Size  Description
	//	------  ----  -------------------------------
	//	 0x00    8    Player name (charmap encoded)
	//	 0x08    8    Padding / gender block (unused here)
	//	 0x10    4    Play time, hours
	//	 0x14    1    Play time, minutes
	//	 0x15    1    Play time, seconds
	TrainerNameOffset   = 0x00
	TrainerHoursOffset  = 0x10
	TrainerMinOffset    = 0x14
	TrainerSecOffset    = 0x15
	trainerDecodedBytes = 0x16
)

// Trainer is the decoded fixed-offset header of SaveBlock2.
type Trainer struct {
	Name    [PlayerNameLen]byte
	Hours   uint32
	Minutes uint8
	Seconds uint8
}

// DecodeTrainer decodes the trainer header out of a SaveBlock2 buffer.
func DecodeTrainer(block []byte) (Trainer, error) {
	if len(block) < trainerDecodedBytes {
		return Trainer{}, fmt.Errorf("trainer block: %w", ErrTruncated)
	}
	var t Trainer
	copy(t.Name[:], block[TrainerNameOffset:TrainerNameOffset+PlayerNameLen])
	t.Hours = buf.U32LE(block[TrainerHoursOffset:])
	t.Minutes = block[TrainerMinOffset]
	t.Seconds = block[TrainerSecOffset]
	return t, nil
}
