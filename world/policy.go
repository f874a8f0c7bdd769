package world

// Assigner decides who controls a new tank and which team it fights for.
// slot counts granted spawns from zero.
type Assigner interface {
	Assign(slot int, req SpawnTank) (PlayerKind, Color)
}

// SlotAssigner gives the first len(UserColors) spawns to human players, each
// with its own color, and every later spawn to the program with Default.
// Explicit fields on the request win.
type SlotAssigner struct {
	UserColors []Color
	Default    Color
}

func DefaultAssigner() SlotAssigner {
	return SlotAssigner{
		UserColors: []Color{TeamBlue, TeamRed},
		Default:    TeamNeutral,
	}
}

func (a SlotAssigner) Assign(slot int, req SpawnTank) (PlayerKind, Color) {
	player, team := PlayerProgram, a.Default
	if slot >= 0 && slot < len(a.UserColors) {
		player, team = PlayerUser, a.UserColors[slot]
	}
	if req.Player != PlayerAuto {
		player = req.Player
	}
	if !req.Team.IsZero() {
		team = req.Team
	}
	return player, team
}

// AssignerFunc adapts a function to Assigner.
type AssignerFunc func(slot int, req SpawnTank) (PlayerKind, Color)

func (f AssignerFunc) Assign(slot int, req SpawnTank) (PlayerKind, Color) {
	return f(slot, req)
}
