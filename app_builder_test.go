package gizmos

import "testing"

type MockModule struct {
	installed bool
}

func (m *MockModule) Install(app *App, commands *Commands) {
	m.installed = true
}

type orderModule struct {
	name  string
	trace *[]string
}

func (m orderModule) Install(app *App, commands *Commands) {
	*m.trace = append(*m.trace, m.name)
}

func TestAppBuilder_Empty(t *testing.T) {
	app := NewAppBuilder().Build()

	if len(app.modules) != 0 {
		t.Errorf("Expected no modules, got %v", len(app.modules))
	}
	if len(app.stages) != len(defaultStages) {
		t.Errorf("Expected %v default stages, got %v", len(defaultStages), len(app.stages))
	}
}

func TestAppBuilder_UseModule(t *testing.T) {
	builder := NewAppBuilder()
	mockModule := &MockModule{}
	builder.UseModule(mockModule)

	if len(builder.modules) != 1 {
		t.Errorf("Expected modules to contain 1 module, got %v", len(builder.modules))
	}
	if mockModule.installed {
		t.Errorf("Expected Install to wait for Build")
	}
}

func TestAppBuilder_Build_WithModules(t *testing.T) {
	builder := NewAppBuilder()
	module := &MockModule{}
	builder.UseModule(module)

	app := builder.Build()

	if len(app.modules) != 1 {
		t.Errorf("Expected app to hold 1 module, got %v", len(app.modules))
	}
	if !module.installed {
		t.Errorf("Expected Install to be called on the module, but it was not")
	}
}

func TestAppBuilder_InstallsInOrder(t *testing.T) {
	var trace []string
	NewAppBuilder().
		UseModule(orderModule{"a", &trace}, orderModule{"b", &trace}).
		UseModule(orderModule{"c", &trace}).
		Build()

	if len(trace) != 3 || trace[0] != "a" || trace[1] != "b" || trace[2] != "c" {
		t.Errorf("Expected modules installed as a, b, c, got %v", trace)
	}
}
