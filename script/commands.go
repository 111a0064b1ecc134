// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package script

import (
	"strconv"
	"strings"

	"cogentcore.org/zinc/base/errors"
	"cogentcore.org/zinc/fields"
	"cogentcore.org/zinc/group"
	"cogentcore.org/zinc/region"
	"cogentcore.org/zinc/region/meshgen"
	"cogentcore.org/zinc/scene"
	"cogentcore.org/zinc/spectrum"
)

// InstallCommands sets [Script.Commands] to the builtin commands.
func (sc *Script) InstallCommands() {
	sc.Commands = map[string]func(args ...string) error{
		"region create":    sc.RegionCreate,
		"region use":       sc.RegionUse,
		"region remove":    sc.RegionRemove,
		"region list":      sc.RegionList,
		"mesh block":       sc.MeshBlock,
		"mesh open":        sc.MeshOpen,
		"mesh save":        sc.MeshSave,
		"group create":     sc.GroupCreate,
		"group add":        sc.GroupAdd,
		"group remove":     sc.GroupRemove,
		"group mode":       sc.GroupMode,
		"group clear":      sc.GroupClear,
		"group list":       sc.GroupList,
		"selection set":    sc.SelectionSet,
		"selection clear":  sc.SelectionClear,
		"selection list":   sc.SelectionList,
		"spectrum create":  sc.SpectrumCreate,
		"spectrum add":     sc.SpectrumAdd,
		"spectrum preset":  sc.SpectrumPreset,
		"spectrum range":   sc.SpectrumRange,
		"spectrum fit":     sc.SpectrumFit,
		"spectrum eval":    sc.SpectrumEval,
		"spectrum save":    sc.SpectrumSave,
		"spectrum open":    sc.SpectrumOpen,
		"spectrum default": sc.SpectrumDefault,
		"spectrum list":    sc.SpectrumList,
	}
}

func parseInts(args []string) ([]int, error) {
	vs := make([]int, len(args))
	for i, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return nil, errors.Argument("%q is not an integer", a)
		}
		vs[i] = v
	}
	return vs, nil
}

func parseFloats(args []string) ([]float64, error) {
	vs := make([]float64, len(args))
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, errors.Argument("%q is not a number", a)
		}
		vs[i] = v
	}
	return vs, nil
}

func joinInts(vs []int) string {
	s := make([]string, len(vs))
	for i, v := range vs {
		s[i] = strconv.Itoa(v)
	}
	return strings.Join(s, " ")
}

// findRegion returns the region at the path, which is relative to the
// current region unless it starts with a slash.
func (sc *Script) findRegion(path string) (*region.Region, error) {
	base := sc.current
	if strings.HasPrefix(path, "/") {
		base = sc.Root
	}
	r := base.FindSubregion(path)
	if r == nil {
		return nil, errors.NotFound("no region %q", path)
	}
	return r, nil
}

// RegionCreate creates the region at the given path and any missing
// regions on the way.
func (sc *Script) RegionCreate(args ...string) error {
	if err := nargs(args, 1, 1, "region create <path>"); err != nil {
		return err
	}
	base := sc.current
	if strings.HasPrefix(args[0], "/") {
		base = sc.Root
	}
	_, err := base.CreateSubregion(args[0])
	return err
}

// RegionUse makes the region at the given path, or the root with no
// path, the region that commands act on.
func (sc *Script) RegionUse(args ...string) error {
	if err := nargs(args, 0, 1, "region use [path]"); err != nil {
		return err
	}
	if len(args) == 0 {
		sc.current = sc.Root
		return nil
	}
	r, err := sc.findRegion(args[0])
	if err != nil {
		return err
	}
	sc.current = r
	return nil
}

// RegionRemove destroys the region at the given path.
func (sc *Script) RegionRemove(args ...string) error {
	if err := nargs(args, 1, 1, "region remove <path>"); err != nil {
		return err
	}
	r, err := sc.findRegion(args[0])
	if err != nil {
		return err
	}
	if r.Parent() == nil {
		return errors.Argument("cannot remove the root region")
	}
	if sc.current.IsDescendantOf(r) {
		sc.current = r.Parent()
	}
	return r.Parent().RemoveChild(r)
}

// RegionList prints the paths of the regions in the tree, with the
// current region marked.
func (sc *Script) RegionList(args ...string) error {
	if err := nargs(args, 0, 0, "region list"); err != nil {
		return err
	}
	var walk func(r *region.Region)
	walk = func(r *region.Region) {
		mark := ""
		if r == sc.current {
			mark = " *"
		}
		sc.printf("region", "%s%s", r.Path(), mark)
		for _, c := range r.Children() {
			walk(c)
		}
	}
	walk(sc.Root)
	return nil
}

// MeshBlock creates a block of nx by ny by nz cubes of the given size
// in the current region.
func (sc *Script) MeshBlock(args ...string) error {
	const usage = "mesh block <nx> <ny> <nz> <size>"
	if err := nargs(args, 4, 4, usage); err != nil {
		return err
	}
	ns, err := parseInts(args[:3])
	if err != nil {
		return err
	}
	size, err := strconv.ParseFloat(args[3], 64)
	if err != nil {
		return errors.Argument("usage: %s", usage)
	}
	fm := sc.current.Fieldmodule()
	coords, err := meshgen.Block(fm, ns[0], ns[1], ns[2], size)
	if err != nil {
		return err
	}
	coords.Release()
	sc.printMeshSize(fm)
	return nil
}

// MeshOpen builds the mesh of a description file in the current region.
func (sc *Script) MeshOpen(args ...string) error {
	if err := nargs(args, 1, 1, "mesh open <file>"); err != nil {
		return err
	}
	d, err := meshgen.Open(args[0])
	if err != nil {
		return err
	}
	fm := sc.current.Fieldmodule()
	coords, err := d.Build(fm)
	if err != nil {
		return err
	}
	coords.Release()
	sc.printMeshSize(fm)
	return nil
}

// MeshSave writes the mesh of the current region to a description file.
func (sc *Script) MeshSave(args ...string) error {
	if err := nargs(args, 1, 1, "mesh save <file>"); err != nil {
		return err
	}
	fm := sc.current.Fieldmodule()
	coords, ok := fm.FindFieldByName(meshgen.CoordinatesName).(*fields.NodeValue)
	if !ok {
		return errors.NotFound("region %s has no %s field", sc.current.Path(), meshgen.CoordinatesName)
	}
	return meshgen.Describe(fm, coords).Save(args[0])
}

func (sc *Script) printMeshSize(fm *region.Fieldmodule) {
	sc.printf("mesh", "%s: %d elements, %d faces, %d lines, %d nodes", sc.current.Path(),
		fm.FindMeshByDimension(3).Size(), fm.FindMeshByDimension(2).Size(),
		fm.FindMeshByDimension(1).Size(), fm.Nodes().Size())
}

// findGroup returns the named group of the current region, accessed.
func (sc *Script) findGroup(name string) (*group.FieldGroup, error) {
	g := group.FindByName(sc.current.Fieldmodule(), name)
	if g == nil {
		return nil, errors.NotFound("no group %q in region %s", name, sc.current.Path())
	}
	return g, nil
}

// GroupCreate creates a managed group with the given name in the
// current region, using [Script.Mode].
func (sc *Script) GroupCreate(args ...string) error {
	if err := nargs(args, 1, 1, "group create <name>"); err != nil {
		return err
	}
	g, err := group.New(sc.current.Fieldmodule())
	if err != nil {
		return err
	}
	defer g.Release()
	if err := g.SetName(args[0]); err != nil {
		return err
	}
	if err := g.SetSubelementHandlingMode(sc.Mode); err != nil {
		return err
	}
	g.SetManaged(true)
	return nil
}

// GroupAdd adds to a group:
//
//	group add element <group> <dim> <id>...
//	group add node <group> <id>...
//	group add region <group> <path>
//	group add local <group>
//	group add face <group> <dim> <face type>
//	group add field <group> <dim> <condition field>
//	group add adjacent <group> <dim> <shared dim>
//
// Dimension 0 in field conditions selects nodes.
func (sc *Script) GroupAdd(args ...string) error {
	return sc.groupEdit(true, args)
}

// GroupRemove removes from a group, with the arguments of
// [Script.GroupAdd] except adjacent.
func (sc *Script) GroupRemove(args ...string) error {
	return sc.groupEdit(false, args)
}

func (sc *Script) groupEdit(add bool, args []string) error {
	verb := "remove"
	if add {
		verb = "add"
	}
	if len(args) < 2 {
		return errors.Argument("usage: group %s <kind> <group> ...", verb)
	}
	kind := args[0]
	g, err := sc.findGroup(args[1])
	if err != nil {
		return err
	}
	defer g.Release()
	args = args[2:]
	fm := sc.current.Fieldmodule()
	fm.BeginChange()
	defer fm.EndChange()
	switch kind {
	case "element":
		return sc.editElements(g, add, args)
	case "node":
		return sc.editNodes(g, add, args)
	case "region":
		if err := nargs(args, 1, 1, "group "+verb+" region <group> <path>"); err != nil {
			return err
		}
		r, err := sc.findRegion(args[0])
		if err != nil {
			return err
		}
		if add {
			return g.AddRegion(r)
		}
		return g.RemoveRegion(r)
	case "local":
		if add {
			return g.AddLocalRegion()
		}
		return g.RemoveLocalRegion()
	case "face":
		if err := nargs(args, 2, 2, "group "+verb+" face <group> <dim> <face type>"); err != nil {
			return err
		}
		var ft region.FaceType
		if err := ft.SetString(args[1]); err != nil {
			return errors.Argument("%v", err)
		}
		cond, err := fields.NewIsOnFace(fm, ft)
		if err != nil {
			return err
		}
		defer cond.Release()
		return sc.editConditional(g, add, args[0], cond)
	case "field":
		if err := nargs(args, 2, 2, "group "+verb+" field <group> <dim> <field>"); err != nil {
			return err
		}
		cond := fm.FindFieldByName(args[1])
		if cond == nil {
			return errors.NotFound("no field %q in region %s", args[1], sc.current.Path())
		}
		return sc.editConditional(g, add, args[0], cond)
	case "adjacent":
		if !add {
			return errors.NotImplemented("group remove adjacent")
		}
		if err := nargs(args, 2, 2, "group add adjacent <group> <dim> <shared dim>"); err != nil {
			return err
		}
		dims, err := parseInts(args)
		if err != nil {
			return err
		}
		mg, err := sc.meshGroup(g, dims[0], true)
		if err != nil {
			return err
		}
		defer mg.Release()
		return mg.AddAdjacentElements(dims[1])
	}
	return errors.NotFound("unknown group %s kind %q", verb, kind)
}

// meshGroup returns the mesh group of the group for the mesh of the
// given dimension, accessed, creating it if create is set.
func (sc *Script) meshGroup(g *group.FieldGroup, dim int, create bool) (*group.MeshGroup, error) {
	mesh := sc.current.Fieldmodule().FindMeshByDimension(dim)
	if mesh == nil {
		return nil, errors.Argument("invalid mesh dimension %d", dim)
	}
	if create {
		return g.GetOrCreateMeshGroup(mesh)
	}
	mg := g.MeshGroup(mesh)
	if mg == nil {
		return nil, errors.NotFound("group %s has no %s group", g.Name(), mesh.Name())
	}
	return mg, nil
}

func (sc *Script) nodesetGroup(g *group.FieldGroup, create bool) (*group.NodesetGroup, error) {
	nodes := sc.current.Fieldmodule().Nodes()
	if create {
		return g.GetOrCreateNodesetGroup(nodes)
	}
	ng := g.NodesetGroup(nodes)
	if ng == nil {
		return nil, errors.NotFound("group %s has no %s group", g.Name(), nodes.Name())
	}
	return ng, nil
}

func (sc *Script) editElements(g *group.FieldGroup, add bool, args []string) error {
	if len(args) < 2 {
		return errors.Argument("usage: group add|remove element <group> <dim> <id>...")
	}
	vs, err := parseInts(args)
	if err != nil {
		return err
	}
	mg, err := sc.meshGroup(g, vs[0], add)
	if err != nil {
		return err
	}
	defer mg.Release()
	mesh := mg.Master()
	for _, id := range vs[1:] {
		e := mesh.FindElementByIdentifier(id)
		if e == nil {
			return errors.NotFound("no element %d in %s", id, mesh.Name())
		}
		if add {
			err = mg.AddElement(e)
		} else {
			err = mg.RemoveElement(e)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (sc *Script) editNodes(g *group.FieldGroup, add bool, args []string) error {
	if len(args) < 1 {
		return errors.Argument("usage: group add|remove node <group> <id>...")
	}
	ids, err := parseInts(args)
	if err != nil {
		return err
	}
	ng, err := sc.nodesetGroup(g, add)
	if err != nil {
		return err
	}
	defer ng.Release()
	nodes := ng.Master()
	for _, id := range ids {
		n := nodes.FindNodeByIdentifier(id)
		if n == nil {
			return errors.NotFound("no node %d", id)
		}
		if add {
			err = ng.AddNode(n)
		} else {
			err = ng.RemoveNode(n)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (sc *Script) editConditional(g *group.FieldGroup, add bool, dimArg string, cond region.Field) error {
	dim, err := strconv.Atoi(dimArg)
	if err != nil {
		return errors.Argument("%q is not a dimension", dimArg)
	}
	if dim == 0 {
		ng, err := sc.nodesetGroup(g, add)
		if err != nil {
			return err
		}
		defer ng.Release()
		if add {
			return ng.AddNodesConditional(cond)
		}
		return ng.RemoveNodesConditional(cond)
	}
	mg, err := sc.meshGroup(g, dim, add)
	if err != nil {
		return err
	}
	defer mg.Release()
	if add {
		return mg.AddElementsConditional(cond)
	}
	return mg.RemoveElementsConditional(cond)
}

// GroupMode sets the subelement handling mode of a group to none or full.
func (sc *Script) GroupMode(args ...string) error {
	if err := nargs(args, 2, 2, "group mode <group> none|full"); err != nil {
		return err
	}
	var mode group.SubelementHandlingMode
	if err := mode.SetString(args[1]); err != nil {
		return errors.Argument("%v", err)
	}
	g, err := sc.findGroup(args[0])
	if err != nil {
		return err
	}
	defer g.Release()
	return g.SetSubelementHandlingMode(mode)
}

// GroupClear removes everything in the current region from a group.
func (sc *Script) GroupClear(args ...string) error {
	if err := nargs(args, 1, 1, "group clear <group>"); err != nil {
		return err
	}
	g, err := sc.findGroup(args[0])
	if err != nil {
		return err
	}
	defer g.Release()
	return g.Clear()
}

// GroupList prints the contents of a group: its mode, whether it
// holds the whole region, its elements and nodes by identifier, and
// its non-empty subregion groups.
func (sc *Script) GroupList(args ...string) error {
	if err := nargs(args, 1, 1, "group list <group>"); err != nil {
		return err
	}
	g, err := sc.findGroup(args[0])
	if err != nil {
		return err
	}
	defer g.Release()
	sc.printGroup(g)
	return nil
}

func (sc *Script) printGroup(g *group.FieldGroup) {
	r := g.Fieldmodule().Region()
	sc.printf("group", "%s %s: mode %v, local region %v, empty %v", g.Name(), r.Path(),
		g.SubelementHandlingMode(), g.ContainsLocalRegion(), g.IsEmpty())
	fm := g.Fieldmodule()
	for dim := 3; dim >= 1; dim-- {
		mg := g.MeshGroup(fm.FindMeshByDimension(dim))
		if mg == nil {
			continue
		}
		var ids []int
		for _, e := range mg.Elements() {
			ids = append(ids, e.Identifier())
		}
		sc.printf("  "+mg.Master().Name()+":", "%s", joinInts(ids))
		mg.Release()
	}
	if ng := g.NodesetGroup(fm.Nodes()); ng != nil {
		var ids []int
		for _, n := range ng.Nodes() {
			ids = append(ids, n.Identifier())
		}
		sc.printf("  "+ng.Master().Name()+":", "%s", joinInts(ids))
		ng.Release()
	}
	for _, c := range r.Children() {
		sg := g.SubregionFieldGroup(c)
		if sg == nil {
			continue
		}
		if !sg.IsEmpty() {
			sc.printGroup(sg)
		}
		sg.Release()
	}
}

// watch makes sure the scene has a notifier printing its selection events.
func (sc *Script) watch(s *scene.Scene) error {
	path := s.Region().Path()
	if n := sc.notifiers[path]; n.IsValid() && n.Scene() == s {
		return nil
	}
	sc.notifiers[path].Release()
	n, err := s.CreateSelectionnotifier()
	if err != nil {
		return err
	}
	sc.notifiers[path] = n
	return n.SetCallback(func(ev scene.Event) {
		sc.printf("selection", "%s: %v", path, ev.ChangeFlags())
	})
}

// SelectionSet sets the selection of the scene of the current region
// to a group.
func (sc *Script) SelectionSet(args ...string) error {
	if err := nargs(args, 1, 1, "selection set <group>"); err != nil {
		return err
	}
	g, err := sc.findGroup(args[0])
	if err != nil {
		return err
	}
	defer g.Release()
	s := scene.Of(sc.current)
	if err := sc.watch(s); err != nil {
		return err
	}
	return s.SetSelectionField(g)
}

// SelectionClear clears the selection of the scene of the current region.
func (sc *Script) SelectionClear(args ...string) error {
	if err := nargs(args, 0, 0, "selection clear"); err != nil {
		return err
	}
	s := scene.Of(sc.current)
	if err := sc.watch(s); err != nil {
		return err
	}
	return s.SetSelectionField(nil)
}

// SelectionList prints the selection group of the scene of the
// current region.
func (sc *Script) SelectionList(args ...string) error {
	if err := nargs(args, 0, 0, "selection list"); err != nil {
		return err
	}
	sel := scene.Of(sc.current).SelectionField()
	if sel == nil {
		sc.printf("selection", "%s: none", sc.current.Path())
		return nil
	}
	defer sel.Release()
	sc.printGroup(sel)
	return nil
}

// findSpectrum returns the named spectrum, accessed, creating it as
// a managed spectrum with no components if create is set.
func (sc *Script) findSpectrum(name string, create bool) (*spectrum.Spectrum, error) {
	if s := sc.Spectra.FindSpectrumByName(name); s != nil {
		return s, nil
	}
	if !create {
		return nil, errors.NotFound("no spectrum %q", name)
	}
	s := sc.Spectra.CreateSpectrum()
	if err := s.SetName(name); err != nil {
		s.Release()
		return nil, err
	}
	if err := s.SetManaged(true); err != nil {
		s.Release()
		return nil, err
	}
	return s, nil
}

// SpectrumCreate creates a spectrum with no components.
func (sc *Script) SpectrumCreate(args ...string) error {
	if err := nargs(args, 1, 1, "spectrum create <name>"); err != nil {
		return err
	}
	if s := sc.Spectra.FindSpectrumByName(args[0]); s != nil {
		s.Release()
		return errors.Argument("spectrum %q exists", args[0])
	}
	s, err := sc.findSpectrum(args[0], true)
	s.Release()
	return err
}

// SpectrumAdd adds a component with the given colour mapping to a
// spectrum, for the given field component or the first.
func (sc *Script) SpectrumAdd(args ...string) error {
	if err := nargs(args, 2, 3, "spectrum add <name> <mapping> [field component]"); err != nil {
		return err
	}
	var mapping spectrum.ColourMapping
	if err := mapping.SetString(enumName(args[1])); err != nil {
		return errors.Argument("%v", err)
	}
	s, err := sc.findSpectrum(args[0], true)
	if err != nil {
		return err
	}
	defer s.Release()
	s.BeginChange()
	defer s.EndChange()
	c, err := s.CreateComponent()
	if err != nil {
		return err
	}
	defer c.Release()
	if err := c.SetColourMapping(mapping); err != nil {
		return err
	}
	if len(args) == 3 {
		fc, err := strconv.Atoi(args[2])
		if err != nil {
			return errors.Argument("%q is not a field component", args[2])
		}
		return c.SetFieldComponent(fc)
	}
	return nil
}

// enumName removes the underscores and dashes of a multi-word enum
// name such as blue_white_red.
func enumName(s string) string {
	return strings.NewReplacer("_", "", "-", "").Replace(s)
}

// SpectrumPreset replaces the components of a spectrum, created if
// needed, with those of a preset.
func (sc *Script) SpectrumPreset(args ...string) error {
	if err := nargs(args, 2, 2, "spectrum preset <name> <preset>"); err != nil {
		return err
	}
	var p spectrum.Preset
	if err := p.SetString(enumName(args[1])); err != nil {
		return errors.Argument("%v", err)
	}
	s, err := sc.findSpectrum(args[0], true)
	if err != nil {
		return err
	}
	defer s.Release()
	return s.ApplyPreset(p)
}

// SpectrumRange prints the range of a spectrum, or sets it with
// a minimum and maximum.
func (sc *Script) SpectrumRange(args ...string) error {
	const usage = "spectrum range <name> [minimum maximum]"
	if err := nargs(args, 1, 3, usage); err != nil {
		return err
	}
	if len(args) == 2 {
		return errors.Argument("usage: %s", usage)
	}
	s, err := sc.findSpectrum(args[0], false)
	if err != nil {
		return err
	}
	defer s.Release()
	if len(args) == 3 {
		vs, err := parseFloats(args[1:])
		if err != nil {
			return err
		}
		return s.SetMinimumAndMaximum(vs[0], vs[1])
	}
	lo, hi := s.Range()
	sc.printf("spectrum", "%s: range %g %g", s.Name(), lo, hi)
	return nil
}

// SpectrumFit sets the range of a spectrum to that of the given values.
func (sc *Script) SpectrumFit(args ...string) error {
	if err := nargs(args, 2, -1, "spectrum fit <name> <value>..."); err != nil {
		return err
	}
	vs, err := parseFloats(args[1:])
	if err != nil {
		return err
	}
	s, err := sc.findSpectrum(args[0], false)
	if err != nil {
		return err
	}
	defer s.Release()
	return s.SetRangeFromData(vs)
}

// SpectrumEval prints the colour of a spectrum for the given field
// values over an opaque black material.
func (sc *Script) SpectrumEval(args ...string) error {
	if err := nargs(args, 2, -1, "spectrum eval <name> <value>..."); err != nil {
		return err
	}
	vs, err := parseFloats(args[1:])
	if err != nil {
		return err
	}
	s, err := sc.findSpectrum(args[0], false)
	if err != nil {
		return err
	}
	defer s.Release()
	c := s.Evaluate(vs, spectrum.Black)
	sc.printf("spectrum", "%s(%s): %.4g %.4g %.4g %.4g", s.Name(), strings.Join(args[1:], " "), c[0], c[1], c[2], c[3])
	return nil
}

// SpectrumSave writes a spectrum to a TOML, YAML or JSON file.
func (sc *Script) SpectrumSave(args ...string) error {
	if err := nargs(args, 2, 2, "spectrum save <name> <file>"); err != nil {
		return err
	}
	s, err := sc.findSpectrum(args[0], false)
	if err != nil {
		return err
	}
	defer s.Release()
	return s.Save(args[1])
}

// SpectrumOpen reads a spectrum, created if needed, from a TOML, YAML
// or JSON file.
func (sc *Script) SpectrumOpen(args ...string) error {
	if err := nargs(args, 2, 2, "spectrum open <name> <file>"); err != nil {
		return err
	}
	s, err := sc.findSpectrum(args[0], true)
	if err != nil {
		return err
	}
	defer s.Release()
	return s.Open(args[1])
}

// SpectrumDefault makes a spectrum the default spectrum of the module.
func (sc *Script) SpectrumDefault(args ...string) error {
	if err := nargs(args, 1, 1, "spectrum default <name>"); err != nil {
		return err
	}
	s, err := sc.findSpectrum(args[0], false)
	if err != nil {
		return err
	}
	defer s.Release()
	return sc.Spectra.SetDefaultSpectrum(s)
}

// SpectrumList prints the spectra with their number of components and range.
func (sc *Script) SpectrumList(args ...string) error {
	if err := nargs(args, 0, 0, "spectrum list"); err != nil {
		return err
	}
	for _, name := range sc.Spectra.Names() {
		s := sc.Spectra.FindSpectrumByName(name)
		if s == nil {
			continue
		}
		lo, hi := s.Range()
		sc.printf("spectrum", "%s: %d components, range %g %g", name, s.NumberOfComponents(), lo, hi)
		s.Release()
	}
	return nil
}
