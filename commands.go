package gizmos

// Commands is the handle systems and modules use to reach the App.
type Commands struct {
	app *App
}

func (cmd *Commands) AddResources(resources ...any) *Commands {
	cmd.app.addResources(resources...)
	return cmd
}

// ReplaceResource installs resource even if one of its type already exists.
func (cmd *Commands) ReplaceResource(resource any) *Commands {
	cmd.app.replaceResource(resource)
	return cmd
}

// Gizmos returns the session's active registry, creating it on first use.
func (cmd *Commands) Gizmos() *Registry {
	return cmd.app.Gizmos()
}

func (cmd *Commands) Logger() Logger {
	return cmd.app.Logger()
}

// Quit stops App.Run after the current frame.
func (cmd *Commands) Quit() {
	cmd.app.Quit()
}
