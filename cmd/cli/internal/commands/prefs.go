package commands

import (
	"context"
	"fmt"
)

// PrefsCmd groups local preference commands.
type PrefsCmd struct {
	Sidebar SidebarCmd `cmd:"" help:"Show or toggle the sidebar preference"`
}

// SidebarCmd shows or toggles the collapsed-sidebar preference.
type SidebarCmd struct {
	Toggle bool `help:"Flip the collapsed state"`
}

func (s *SidebarCmd) Run(ctx context.Context, globals *Globals) error {
	store, err := globals.NewStore()
	if err != nil {
		return err
	}

	collapsed := store.SidebarCollapsed()
	if s.Toggle {
		collapsed = !collapsed
		if err := store.SetSidebarCollapsed(collapsed); err != nil {
			return err
		}
	}

	state := "expanded"
	if collapsed {
		state = "collapsed"
	}
	fmt.Printf("Sidebar is %s.\n", state)
	return nil
}
