package gizmos

import (
	"fmt"
	"reflect"
	"runtime"
	"time"
)

type systemFn any

type Module interface {
	Install(app *App, cmd *Commands)
}

// App is the host frame driver: it owns the session's resources (including
// the one authoritative gizmo Registry) and calls systems stage by stage.
type App struct {
	modules   []Module
	stages    []Stage
	systems   map[string][]systemFn
	resources map[reflect.Type]any
	logger    Logger

	quit          bool
	accumulator   time.Duration
	maxFixedSteps int
}

// maxFixedStepsPerFrame bounds catch-up after a long stall.
const maxFixedStepsPerFrame = 8

func NewApp() *App {
	app := &App{
		systems:       make(map[string][]systemFn),
		resources:     make(map[reflect.Type]any),
		maxFixedSteps: maxFixedStepsPerFrame,
	}
	for _, stage := range defaultStages {
		app.stages = append(app.stages, stage)
		app.systems[stage.Name] = make([]systemFn, 0)
	}
	return app
}

func (app *App) Commands() *Commands {
	return &Commands{
		app: app,
	}
}

func (app *App) UseModules(modules ...Module) *App {
	cmd := app.Commands()
	for _, module := range modules {
		app.modules = append(app.modules, module)
		module.Install(app, cmd)
	}
	return app
}

// Run steps the app with wall-clock deltas until a system calls Commands.Quit.
func (app *App) Run() {
	app.Logger().Infof("Running %d stages, %d modules", len(app.stages), len(app.modules))

	last := time.Now()
	for !app.quit {
		now := time.Now()
		app.Step(now.Sub(last))
		last = now
	}
}

// Step runs one frame: advances Time by dt, runs each fixed stage once per
// whole fixed step accumulated, and every other stage once.
func (app *App) Step(dt time.Duration) {
	t := app.timeResource()
	t.advance(dt)

	app.accumulator += t.Dt
	fixedSteps := 0
	for t.FixedDt > 0 && app.accumulator >= t.FixedDt && fixedSteps < app.maxFixedSteps {
		app.accumulator -= t.FixedDt
		fixedSteps++
	}
	if fixedSteps == app.maxFixedSteps {
		app.accumulator = 0
	}

	for _, stage := range app.stages {
		if stage.UpdateType == FixedUpdate {
			t.InFixedStep = true
			for i := 0; i < fixedSteps; i++ {
				app.callStage(stage)
			}
			t.InFixedStep = false
			continue
		}
		app.callStage(stage)
	}
}

func (app *App) Quit() {
	app.quit = true
}

func (app *App) callStage(stage Stage) {
	for _, system := range app.systems[stage.Name] {
		app.callSystem(system)
	}
}

func (app *App) addResources(resources ...any) *App {
	for _, resource := range resources {
		resourceType := reflect.TypeOf(resource)
		if resourceType.Kind() != reflect.Pointer {
			panic(fmt.Sprintf("%s is not a pointer resource", resourceType))
		}
		if _, ok := app.resources[resourceType.Elem()]; ok {
			panic(fmt.Sprintf("%s is already in resources", resourceType))
		}

		app.resources[resourceType.Elem()] = resource
		if l, ok := resource.(Logger); ok && app.logger == nil {
			app.logger = l
		}
	}
	return app
}

// replaceResource installs resource, returning whatever it displaced.
func (app *App) replaceResource(resource any) (previous any) {
	resourceType := reflect.TypeOf(resource)
	if resourceType.Kind() != reflect.Pointer {
		panic(fmt.Sprintf("%s is not a pointer resource", resourceType))
	}
	previous = app.resources[resourceType.Elem()]
	app.resources[resourceType.Elem()] = resource
	return previous
}

// Resource looks up the resource of type *T.
func Resource[T any](app *App) (*T, bool) {
	res, ok := app.resources[reflect.TypeOf((*T)(nil)).Elem()].(*T)
	return res, ok
}

// timeResource returns the Time resource, creating one if TimeModule was not installed.
func (app *App) timeResource() *Time {
	if t, ok := app.resources[typeOfTime].(*Time); ok {
		return t
	}
	t := &Time{Time: time.Now(), FixedDt: DefaultFixedStep}
	app.addResources(t)
	return t
}

var (
	typeOfCommands = reflect.TypeOf(Commands{})
	typeOfTime     = reflect.TypeOf(Time{})
	typeOfRegistry = reflect.TypeOf(Registry{})
)

func (app *App) callSystem(system systemFn) {
	systemType := reflect.TypeOf(system)
	systemValue := reflect.ValueOf(system)

	args := make([]reflect.Value, systemType.NumIn())

	for i := 0; i < systemType.NumIn(); i++ {
		argType := systemType.In(i)
		if argType.Kind() != reflect.Pointer {
			app.panicUnresolved(systemValue, systemType, argType)
		}
		underlyingType := argType.Elem()

		switch {
		case underlyingType == typeOfCommands:
			args[i] = reflect.ValueOf(&Commands{app: app})
		case underlyingType == typeOfTime:
			args[i] = reflect.ValueOf(app.timeResource())
		case underlyingType == typeOfRegistry:
			args[i] = reflect.ValueOf(app.Gizmos())
		default:
			resource, argIsResource := app.resources[underlyingType]
			if !argIsResource {
				app.panicUnresolved(systemValue, systemType, argType)
			}
			args[i] = reflect.ValueOf(resource)
		}
	}
	systemValue.Call(args)
}

func (app *App) panicUnresolved(systemValue reflect.Value, systemType, argType reflect.Type) {
	msg := fmt.Sprintf("Unable to resolve System dependency.\nSystem: %s\nSystem type: %s\nDependency: %s",
		runtime.FuncForPC(systemValue.Pointer()).Name(),
		fmt.Sprint(systemType),
		fmt.Sprint(argType),
	)
	app.Logger().Errorf("%s", msg)
	panic(msg)
}
