package game

// MenuView is a selectable list.
type MenuView struct {
	Title    string
	Items    []string
	Selected int
	Footer   string
}

// Panel is a block of text drawn over the scene.
type Panel struct {
	Title  string
	Lines  []string
	Footer string
}

// View is everything a frontend needs to draw one frame. All text is
// already translated.
type View struct {
	Scene    Scene
	World    *World // Nil when no session is shown
	HUD      []string
	Help     []string
	Messages []string
	Menu     *MenuView
	Panel    *Panel
	Marker   string // Drawn above NPCs showing their indicator
}

var helpLines = []string{"WASD: Move", "SPACE: Attack", "E: Interact", "I: Inventory", "ESC: Menu", "F5: Save"}

// View builds the frame description for the current scene.
func (g *Game) View() View {
	v := View{Scene: g.scene, Messages: g.Messages(), Marker: g.text.Get("[E]")}

	switch g.scene {
	case SceneBoot:
		v.Panel = &Panel{
			Title:  g.text.Get("PIXEL CRAWLER"),
			Lines:  []string{g.text.Get("Loading: %d%%", int(g.LoadProgress()*100))},
			Footer: g.text.Get("Loading..."),
		}
		return v

	case SceneMenu:
		title := g.text.Get("PIXEL CRAWLER")
		if g.menu.page == pageOptions {
			title = g.text.Get("OPTIONS")
		}
		v.Menu = &MenuView{Title: title, Items: g.menuLabels(), Selected: g.menu.selected, Footer: Version}
		return v
	}

	if g.world == nil {
		return v
	}
	v.World = g.world
	v.HUD = g.hud()
	v.Help = g.translateAll(helpLines)

	switch g.scene {
	case ScenePaused:
		v.Menu = &MenuView{Title: g.text.Get("PAUSED"), Items: g.menuLabels(), Selected: g.menu.selected}
	case SceneInventory:
		v.Panel = g.inventoryPanel()
	case SceneDialogue:
		name := g.text.Get(g.npc.Name)
		v.Panel = &Panel{
			Title:  name,
			Lines:  []string{g.text.Get("%s: %s", name, g.text.Get(g.line))},
			Footer: g.text.Get("[S] Shop    [ESC] Close"),
		}
	case SceneShop:
		v.Panel = g.shopPanel()
	case SceneGameOver:
		v.Panel = &Panel{
			Title:  g.text.Get("GAME OVER"),
			Lines:  []string{g.text.Get("Level: %d", g.world.Player.Stats.Level)},
			Footer: g.text.Get("Press ENTER to return to the menu"),
		}
	}
	return v
}

func (g *Game) hud() []string {
	p := g.world.Player
	return []string{
		g.text.Get("HP: %d / %d", p.Stats.HP, p.Stats.MaxHP),
		g.text.Get("Level: %d", p.Stats.Level),
		g.text.Get("Gold: %d", p.Inventory.Gold),
		g.text.Get("EXP: %d / %d", p.Stats.Exp, p.ExpToLevel()),
	}
}

func (g *Game) inventoryPanel() *Panel {
	p := g.world.Player
	lines := []string{
		g.text.Get("Level: %d", p.Stats.Level),
		g.text.Get("HP: %d / %d", p.Stats.HP, p.Stats.MaxHP),
		g.text.Get("Attack: %d", p.Stats.AttackPower),
		g.text.Get("Gold: %d", p.Inventory.Gold),
		"",
		g.text.Get("Items:"),
	}
	if len(p.Inventory.Items) == 0 {
		lines = append(lines, g.text.Get("(empty)"))
	}
	for i, item := range p.Inventory.Items {
		lines = append(lines, g.text.Get("%d. %s", i+1, g.text.Get(item.Name)))
	}
	lines = append(lines, "", g.text.Get("Press a number to use a potion"))
	return &Panel{Title: g.text.Get("INVENTORY"), Lines: lines, Footer: g.text.Get("Press I or ESC to close")}
}

func (g *Game) shopPanel() *Panel {
	lines := []string{g.text.Get("Items:"), ""}
	for i, item := range g.npc.Shop {
		lines = append(lines, g.text.Get("%d. %s - %dG", i+1, g.text.Get(item.Name), item.Price))
	}
	lines = append(lines, "",
		g.text.Get("Your Gold: %dG", g.world.Player.Inventory.Gold),
		g.text.Get("Press a number to buy"),
	)
	return &Panel{
		Title:  g.text.Get("%s's Shop", g.text.Get(g.npc.Name)),
		Lines:  lines,
		Footer: g.text.Get("Press ESC to close"),
	}
}
