package scene

import "testing"

func TestSceneAddAndFind(t *testing.T) {
	s := NewScene()
	obj := NewGameObject("Player")
	obj.Tag = "actor"
	s.Add(obj)

	if s.Find("Player") != obj {
		t.Error("Find did not return the registered object")
	}
	if s.Find("Missing") != nil {
		t.Error("Find should return nil for unknown names")
	}
	if got := s.FindWithTag("actor"); len(got) != 1 || got[0] != obj {
		t.Errorf("FindWithTag returned %v", got)
	}
}

func TestSceneAddStartsComponents(t *testing.T) {
	s := NewScene()
	obj := NewGameObject("Test")
	comp := &MockComponent{}
	obj.AddComponent(comp)

	s.Add(obj)
	if !comp.startCalled {
		t.Error("Start not called on scene registration")
	}
}

func TestSceneUpdateSkipsInactive(t *testing.T) {
	s := NewScene()
	obj := NewGameObject("Test")
	comp := &MockComponent{}
	obj.AddComponent(comp)
	s.Add(obj)
	obj.SetActive(false)

	s.Update()
	if comp.updateCalled {
		t.Error("Update must not run on inactive objects")
	}

	obj.SetActive(true)
	s.Update()
	if !comp.updateCalled {
		t.Error("Update should run on active objects")
	}
}

func TestSceneRemove(t *testing.T) {
	s := NewScene()
	obj := NewGameObject("Test")
	comp := &MockComponent{}
	obj.AddComponent(comp)
	s.Add(obj)

	s.Remove(obj)
	if len(s.Objects()) != 0 {
		t.Errorf("Expected empty scene, got %d objects", len(s.Objects()))
	}
	if !comp.destroyCalled {
		t.Error("OnDestroy not called on removal")
	}
}

func TestSceneDeferredDestroy(t *testing.T) {
	s := NewScene()
	obj := NewGameObject("Test")
	s.Add(obj)

	s.Destroy(obj)
	if len(s.Objects()) != 1 {
		t.Error("Destroy should defer removal to the next Update")
	}

	s.Update()
	if len(s.Objects()) != 0 {
		t.Errorf("Expected object removed after Update, got %d", len(s.Objects()))
	}
}

func TestSceneClear(t *testing.T) {
	s := NewScene()
	s.Add(NewGameObject("A"))
	s.Add(NewGameObject("B"))

	s.Clear()
	if len(s.Objects()) != 0 {
		t.Errorf("Expected empty scene after Clear, got %d", len(s.Objects()))
	}
}
