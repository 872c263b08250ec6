package main

import (
	"github.com/emeraldtools/savekit/namedb"
	"github.com/emeraldtools/savekit/pkg/save"
)

// monView is the JSON shape of one party record: the numeric fields plus the
// display translations resolved through the name service.
type monView struct {
	save.Pokemon

	Nickname      string    `json:"nickname"`
	OTName        string    `json:"otName"`
	SpeciesName   string    `json:"speciesName"`
	DisplayOTID   string    `json:"displayOtId"`
	DisplayNature string    `json:"displayNature"`
	MoveNames     [4]string `json:"moveNames"`
	IVs           [6]uint8  `json:"ivs"`
	TotalEVs      int       `json:"totalEvs"`
	TotalIVs      int       `json:"totalIvs"`
}

func makeMonView(db *namedb.DB, p save.Pokemon) monView {
	v := monView{
		Pokemon:       p,
		Nickname:      db.DecodeText(p.NicknameRaw),
		OTName:        db.DecodeText(p.OTNameRaw),
		SpeciesName:   db.Species(int(p.SpeciesID)),
		DisplayOTID:   p.DisplayOTID(),
		DisplayNature: db.Nature(int(p.Nature())),
		IVs:           p.IVs(),
		TotalEVs:      p.TotalEVs(),
		TotalIVs:      p.TotalIVs(),
	}
	for i, id := range p.Moves {
		if id == 0 {
			v.MoveNames[i] = "---"
		} else {
			v.MoveNames[i] = db.Move(int(id))
		}
	}
	return v
}

// saveView is the JSON shape of a whole parse result.
type saveView struct {
	PlayerName string        `json:"player_name"`
	PlayTime   save.Trainer  `json:"play_time"`
	Info       save.SaveInfo `json:"info"`
	SectorMap  map[int]int   `json:"sector_map"`
	Party      []monView     `json:"party_pokemon"`

	Diagnostics *save.DiagnosticReport `json:"diagnostics,omitempty"`
}

func makeSaveView(db *namedb.DB, r save.Reader, withDiag bool) (saveView, error) {
	view := saveView{
		Info:      r.Info(),
		SectorMap: r.SectorMap(),
	}

	trainer, err := r.Trainer()
	if err != nil {
		return view, err
	}
	view.PlayerName = db.DecodeText(trainer.NameRaw)
	view.PlayTime = trainer

	party, err := r.Party()
	if err != nil {
		return view, err
	}
	view.Party = make([]monView, 0, len(party))
	for _, p := range party {
		view.Party = append(view.Party, makeMonView(db, p))
	}

	if withDiag {
		view.Diagnostics = r.Diagnostics()
	}
	return view, nil
}
