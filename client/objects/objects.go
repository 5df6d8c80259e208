package objects

import (
	"fmt"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
)

type Lifecycle interface {
	// Game flow methods
	Init() error
	Destroy() error
	Update() error
	Draw(screen *ebiten.Image)
}

// GameObject is the highest level interface for game related types.
// Objects form a tree; the helpers below walk it in z-index order.
type GameObject interface {
	Lifecycle

	GetID() string
	GetZIndex() int
	GetParent() GameObject
	SetParent(parent GameObject)
	GetChildren() []GameObject
	AddChild(id string, child GameObject) error
	RemoveChild(id string) error
}

type NewBaseObjectOpts struct {
	// ZIndex orders siblings when drawing, lowest first.
	ZIndex int
}

// BaseObject implements the tree bookkeeping of a GameObject.
// Embedders override Update and Draw.
type BaseObject struct {
	id       string
	zIndex   int
	parent   GameObject
	children []GameObject
	ids      map[string]GameObject
}

var _ GameObject = &BaseObject{}

func NewBaseObject(id string, opts *NewBaseObjectOpts) *BaseObject {
	o := &BaseObject{
		id:  id,
		ids: make(map[string]GameObject),
	}
	if opts != nil {
		o.zIndex = opts.ZIndex
	}
	return o
}

func (o *BaseObject) Init() error {
	return nil
}

func (o *BaseObject) Destroy() error {
	return nil
}

func (o *BaseObject) Update() error {
	return nil
}

func (o *BaseObject) Draw(screen *ebiten.Image) {}

func (o *BaseObject) GetID() string {
	return o.id
}

func (o *BaseObject) GetZIndex() int {
	return o.zIndex
}

func (o *BaseObject) GetParent() GameObject {
	return o.parent
}

func (o *BaseObject) SetParent(parent GameObject) {
	o.parent = parent
}

// GetChildren returns the children sorted by z-index. Equal z-indexes keep insertion order.
func (o *BaseObject) GetChildren() []GameObject {
	return o.children
}

// AddChild initializes the child tree and attaches it under id.
func (o *BaseObject) AddChild(id string, child GameObject) error {
	if _, ok := o.ids[id]; ok {
		return fmt.Errorf("child object with id %s already exists", id)
	}
	if err := InitTree(child); err != nil {
		return fmt.Errorf("failed to initialize child object tree: %v", err)
	}
	o.ids[id] = child
	child.SetParent(o)
	o.children = append(o.children, child)
	sort.SliceStable(o.children, func(i, j int) bool {
		return o.children[i].GetZIndex() < o.children[j].GetZIndex()
	})
	return nil
}

// RemoveChild destroys the child tree and detaches it.
func (o *BaseObject) RemoveChild(id string) error {
	child, ok := o.ids[id]
	if !ok {
		return fmt.Errorf("child object with id %s does not exist", id)
	}
	if err := DestroyTree(child); err != nil {
		return fmt.Errorf("failed to destroy child object tree: %v", err)
	}
	delete(o.ids, id)
	child.SetParent(nil)
	for i, c := range o.children {
		if c == child {
			o.children = append(o.children[:i], o.children[i+1:]...)
			break
		}
	}
	return nil
}

func InitTree(o GameObject) error {
	if err := o.Init(); err != nil {
		return fmt.Errorf("failed to init %s: %v", o.GetID(), err)
	}
	for _, c := range o.GetChildren() {
		if err := InitTree(c); err != nil {
			return err
		}
	}
	return nil
}

func DestroyTree(o GameObject) error {
	for _, c := range o.GetChildren() {
		if err := DestroyTree(c); err != nil {
			return err
		}
	}
	if err := o.Destroy(); err != nil {
		return fmt.Errorf("failed to destroy %s: %v", o.GetID(), err)
	}
	return nil
}

func UpdateTree(o GameObject) error {
	if err := o.Update(); err != nil {
		return fmt.Errorf("failed to update %s: %v", o.GetID(), err)
	}
	// children may remove themselves while updating
	children := append([]GameObject(nil), o.GetChildren()...)
	for _, c := range children {
		if err := UpdateTree(c); err != nil {
			return err
		}
	}
	return nil
}

func DrawTree(o GameObject, screen *ebiten.Image) {
	o.Draw(screen)
	for _, c := range o.GetChildren() {
		DrawTree(c, screen)
	}
}
