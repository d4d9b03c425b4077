// Package ui is the terminal view layer. It renders store snapshots and
// derived figures, and turns key presses into service calls. All state kept
// here (category colors, income/savings history, the unallocated savings
// figure) is presentation-only and never written back to the core.
package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/aarondl/opt/omit"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-buddy/internal/service"
	"github.com/carson-networks/budget-buddy/internal/storage"
)

type mode int

const (
	modeNormal mode = iota
	modeAddItem
	modeEditItem
	modeAddGoal
	modeSetGoalAmount
	modeAddIncome
	modeAddSavings
)

type focusArea int

const (
	focusItems focusArea = iota
	focusGoals
)

type keyMap struct {
	AddItem    key.Binding
	EditItem   key.Binding
	Delete     key.Binding
	AddIncome  key.Binding
	AddSavings key.Binding
	AddGoal    key.Binding
	SetAmount  key.Binding
	CycleColor key.Binding
	SwitchPane key.Binding
	Quit       key.Binding
}

var keys = keyMap{
	AddItem:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add item")),
	EditItem:   key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
	Delete:     key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
	AddIncome:  key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "add income")),
	AddSavings: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "add savings")),
	AddGoal:    key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "add goal")),
	SetAmount:  key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "set goal amount")),
	CycleColor: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "cycle color")),
	SwitchPane: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch pane")),
	Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// Model is the bubbletea model for the whole screen.
type Model struct {
	svc *service.BudgetService

	table table.Model
	ti    textinput.Model

	mode    mode
	focus   focusArea
	formErr string

	// multi-step form staging
	step         int
	fieldName    string
	fieldCat     string
	editTarget   storage.BudgetItem
	editingGoal  storage.SavingsGoal
	editingItem  bool
	goalCursor   int

	// latest snapshot, refreshed after every mutation
	snap storage.Snapshot

	// view-local presentation state
	catColors      map[string]int
	incomeHistory  []decimal.Decimal
	savingsHistory []decimal.Decimal
	unallocated    decimal.Decimal

	width  int
	height int
}

func NewModel(svc *service.BudgetService) Model {
	columns := []table.Column{
		{Title: "Name", Width: 18},
		{Title: "Category", Width: 14},
		{Title: "Amount", Width: 12},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(10),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true).BorderStyle(lipgloss.NormalBorder()).BorderBottom(true)
	styles.Selected = styles.Selected.Bold(true).Reverse(true)
	t.SetStyles(styles)

	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 64

	m := Model{
		svc:         svc,
		table:       t,
		ti:          ti,
		catColors:   make(map[string]int),
		unallocated: decimal.Zero,
	}
	m.refresh()
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		if m.mode == modeNormal {
			return m.updateNormal(msg)
		}
		return m.updateForm(msg)
	}
	return m, nil
}

func (m Model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, keys.SwitchPane):
		if m.focus == focusItems {
			m.focus = focusGoals
			m.table.Blur()
		} else {
			m.focus = focusItems
			m.table.Focus()
		}
		return m, nil

	case key.Matches(msg, keys.AddItem):
		return m.startForm(modeAddItem, "Item name"), nil

	case key.Matches(msg, keys.EditItem):
		if m.focus != focusItems {
			return m, nil
		}
		item, ok := m.selectedItem()
		if !ok {
			return m, nil
		}
		m.editTarget = item
		m.editingItem = true
		next := m.startForm(modeEditItem, "Item name")
		next.ti.SetValue(item.Name)
		return next, nil

	case key.Matches(msg, keys.Delete):
		if m.focus == focusItems {
			if item, ok := m.selectedItem(); ok {
				_, _ = m.svc.DeleteBudgetItem(context.Background(), item.ID)
				m.refresh()
			}
			return m, nil
		}
		if goal, ok := m.selectedGoal(); ok {
			_, _ = m.svc.DeleteSavingsGoal(context.Background(), goal.ID)
			m.refresh()
			if m.goalCursor >= len(m.snap.SavingsGoals) && m.goalCursor > 0 {
				m.goalCursor--
			}
		}
		return m, nil

	case key.Matches(msg, keys.AddIncome):
		return m.startForm(modeAddIncome, "Additional income"), nil

	case key.Matches(msg, keys.AddSavings):
		return m.startForm(modeAddSavings, "Savings deposit"), nil

	case key.Matches(msg, keys.AddGoal):
		if len(m.snap.SavingsGoals) >= storage.MaxSavingsGoals {
			m.formErr = fmt.Sprintf("at most %d goals", storage.MaxSavingsGoals)
			return m, nil
		}
		return m.startForm(modeAddGoal, "Goal name"), nil

	case key.Matches(msg, keys.SetAmount):
		if goal, ok := m.selectedGoal(); ok {
			m.editingGoal = goal
			next := m.startForm(modeSetGoalAmount, "Current amount")
			next.ti.SetValue(goal.CurrentAmount.StringFixed(2))
			return next, nil
		}
		return m, nil

	case key.Matches(msg, keys.CycleColor):
		if item, ok := m.selectedItem(); ok && item.Category != "" {
			m.catColors[item.Category]++
		}
		return m, nil
	}

	if m.focus == focusGoals {
		switch msg.String() {
		case "up", "k":
			if m.goalCursor > 0 {
				m.goalCursor--
			}
		case "down", "j":
			if m.goalCursor < len(m.snap.SavingsGoals)-1 {
				m.goalCursor++
			}
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeNormal
		m.step = 0
		m.formErr = ""
		m.editingItem = false
		m.ti.Blur()
		m.ti.SetValue("")
		return m, nil
	case "enter":
		return m.submitField()
	}

	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

func (m Model) startForm(formMode mode, placeholder string) Model {
	m.mode = formMode
	m.step = 0
	m.formErr = ""
	m.ti.Placeholder = placeholder
	m.ti.SetValue("")
	m.ti.Focus()
	m.table.Blur()
	return m
}

func (m Model) advance(placeholder, value string) Model {
	m.step++
	m.formErr = ""
	m.ti.Placeholder = placeholder
	m.ti.SetValue(value)
	return m
}

func (m Model) finishForm() Model {
	m.mode = modeNormal
	m.step = 0
	m.formErr = ""
	m.editingItem = false
	m.ti.Blur()
	m.ti.SetValue("")
	if m.focus == focusItems {
		m.table.Focus()
	}
	m.refresh()
	return m
}

func (m Model) submitField() (tea.Model, tea.Cmd) {
	value := m.ti.Value()
	ctx := context.Background()

	switch m.mode {
	case modeAddItem, modeEditItem:
		switch m.step {
		case 0:
			name, err := parseName(value)
			if err != nil {
				m.formErr = err.Error()
				return m, nil
			}
			m.fieldName = name
			prefill := ""
			if m.editingItem {
				prefill = m.editTarget.Category
			}
			return m.advance("Category", prefill), nil
		case 1:
			cat, err := parseName(value)
			if err != nil {
				m.formErr = err.Error()
				return m, nil
			}
			m.fieldCat = cat
			prefill := ""
			if m.editingItem {
				prefill = m.editTarget.Amount.StringFixed(2)
			}
			return m.advance("Amount", prefill), nil
		case 2:
			amount, err := parseAmount(value)
			if err != nil {
				m.formErr = err.Error()
				return m, nil
			}
			if m.mode == modeAddItem {
				_, err = m.svc.AddBudgetItem(ctx, storage.BudgetItemCreate{
					Name:     m.fieldName,
					Category: m.fieldCat,
					Amount:   amount,
					Color:    m.categoryColor(m.fieldCat),
				})
			} else {
				patch := storage.BudgetItemPatch{}
				if m.fieldName != m.editTarget.Name {
					patch.Name = omit.From(m.fieldName)
				}
				if m.fieldCat != m.editTarget.Category {
					patch.Category = omit.From(m.fieldCat)
					patch.Color = omit.From(m.categoryColor(m.fieldCat))
				}
				if !amount.Equal(m.editTarget.Amount) {
					patch.Amount = omit.From(amount)
				}
				_, err = m.svc.UpdateBudgetItem(ctx, m.editTarget.ID, patch)
			}
			if err != nil {
				m.formErr = err.Error()
				return m, nil
			}
			return m.finishForm(), nil
		}

	case modeAddGoal:
		switch m.step {
		case 0:
			name, err := parseName(value)
			if err != nil {
				m.formErr = err.Error()
				return m, nil
			}
			m.fieldName = name
			return m.advance("Target amount", ""), nil
		case 1:
			target, err := parsePositiveAmount(value)
			if err != nil {
				m.formErr = err.Error()
				return m, nil
			}
			_, err = m.svc.AddSavingsGoal(ctx, storage.SavingsGoalCreate{
				Name:         m.fieldName,
				TargetAmount: target,
			})
			if err != nil {
				m.formErr = err.Error()
				return m, nil
			}
			return m.finishForm(), nil
		}

	case modeSetGoalAmount:
		amount, err := parseAmount(value)
		if err != nil {
			m.formErr = err.Error()
			return m, nil
		}
		_, err = m.svc.UpdateSavingsGoal(ctx, m.editingGoal.ID, storage.SavingsGoalPatch{
			CurrentAmount: omit.From(amount),
		})
		if err != nil {
			m.formErr = err.Error()
			return m, nil
		}
		return m.finishForm(), nil

	case modeAddIncome:
		amount, err := parsePositiveAmount(value)
		if err != nil {
			m.formErr = err.Error()
			return m, nil
		}
		if err := m.svc.AddIncome(ctx, amount); err != nil {
			m.formErr = err.Error()
			return m, nil
		}
		m.incomeHistory = append(m.incomeHistory, amount)
		return m.finishForm(), nil

	case modeAddSavings:
		amount, err := parsePositiveAmount(value)
		if err != nil {
			m.formErr = err.Error()
			return m, nil
		}
		if len(m.snap.SavingsGoals) > 0 {
			if err := m.svc.DistributeSavings(ctx, amount); err != nil {
				m.formErr = err.Error()
				return m, nil
			}
		} else {
			m.unallocated = m.unallocated.Add(amount)
		}
		m.savingsHistory = append(m.savingsHistory, amount)
		return m.finishForm(), nil
	}

	return m, nil
}

// refresh pulls the latest committed snapshot and rebuilds the table rows.
func (m *Model) refresh() {
	m.snap = m.svc.Snapshot()

	rows := make([]table.Row, len(m.snap.BudgetItems))
	for i, it := range m.snap.BudgetItems {
		rows[i] = table.Row{it.Name, it.Category, formatMoney(it.Amount)}
	}
	m.table.SetRows(rows)
}

func (m Model) selectedItem() (storage.BudgetItem, bool) {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.snap.BudgetItems) {
		return storage.BudgetItem{}, false
	}
	return m.snap.BudgetItems[idx], true
}

func (m Model) selectedGoal() (storage.SavingsGoal, bool) {
	if m.goalCursor < 0 || m.goalCursor >= len(m.snap.SavingsGoals) {
		return storage.SavingsGoal{}, false
	}
	return m.snap.SavingsGoals[m.goalCursor], true
}

// categoryColor resolves the display color for a category, assigning the
// next palette entry the first time a category is seen.
func (m Model) categoryColor(category string) string {
	if category == "" {
		return defaultColor
	}
	idx, ok := m.catColors[category]
	if !ok {
		idx = len(m.catColors)
		m.catColors[category] = idx
	}
	return normalizeHex(paletteColor(idx))
}

func (m Model) View() string {
	left := lipgloss.JoinVertical(lipgloss.Left,
		m.viewSummary(),
		panelStyle.Render(titleStyle.Render("Budget Items")+"\n"+m.table.View()),
		m.viewInput(),
		m.viewHelp(),
	)
	right := lipgloss.JoinVertical(lipgloss.Left,
		m.viewCategories(),
		m.viewGoals(),
	)
	return lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)
}

func (m Model) viewSummary() string {
	leftover := service.Leftover(m.snap.Income, m.snap.BudgetItems)
	leftoverStr := successStyle.Render(formatMoney(leftover))
	if leftover.IsNegative() {
		leftoverStr = errorStyle.Render(formatMoney(leftover))
	}

	totalSavings := service.TotalSavings(m.snap.SavingsGoals).Add(m.unallocated)

	line := fmt.Sprintf("%s  %s %s   %s %s   %s %s   %s %s",
		titleStyle.Render("Budget Buddy"),
		accentStyle.Render("Income"), formatMoney(m.snap.Income),
		warnStyle.Render("Expenses"), formatMoney(service.TotalExpenses(m.snap.BudgetItems)),
		titleStyle.Render("Leftover"), leftoverStr,
		successStyle.Render("Savings"), formatMoney(totalSavings),
	)
	if n := len(m.incomeHistory); n > 0 {
		line += mutedStyle.Render(fmt.Sprintf("  (+%s last income)", formatMoney(m.incomeHistory[n-1])))
	}
	return headerStyle.Render(line)
}

func (m Model) viewCategories() string {
	categories := service.CategoryBreakdown(m.snap.BudgetItems)
	if len(categories) == 0 {
		return panel("Categories", mutedStyle.Render("No categories yet."))
	}

	lines := make([]string, 0, len(categories)*2)
	for _, cat := range categories {
		hex := m.displayColor(cat.Name)
		lines = append(lines,
			fmt.Sprintf("%s %-14s %10s %7s", swatch(hex), cat.Name, formatMoney(cat.TotalAmount), pctLabel(cat.Percentage)),
			"  "+coloredBar(cat.Percentage, 28, hex),
		)
	}
	return panel("Categories", lines...)
}

func (m Model) viewGoals() string {
	goals := m.snap.SavingsGoals
	if len(goals) == 0 {
		lines := []string{mutedStyle.Render("No savings goals yet. Add up to 4.")}
		if m.unallocated.IsPositive() {
			lines = append(lines, fmt.Sprintf("Unallocated savings: %s", formatMoney(m.unallocated)))
		}
		return panel("Savings Goals", lines...)
	}

	lines := make([]string, 0, len(goals)*2+1)
	for i, goal := range goals {
		progress := service.GoalProgress(goal)
		name := goal.Name
		if m.focus == focusGoals && i == m.goalCursor {
			name = lipgloss.NewStyle().Bold(true).Reverse(true).Render(" " + name + " ")
		}
		label := fmt.Sprintf("%s  %s of %s  %s", name,
			formatMoney(goal.CurrentAmount), formatMoney(goal.TargetAmount), pctLabel(progress))
		if progress >= 100 {
			label = successStyle.Render(label + "  ✔")
		}
		lines = append(lines, label, "  "+bar(progress, 28))
	}
	if m.unallocated.IsPositive() {
		lines = append(lines, mutedStyle.Render("Unallocated: "+formatMoney(m.unallocated)))
	}
	return panel("Savings Goals", lines...)
}

func (m Model) viewInput() string {
	if m.mode == modeNormal {
		if m.formErr != "" {
			return errorStyle.Render("✖ " + m.formErr)
		}
		return ""
	}
	out := m.ti.View()
	if m.formErr != "" {
		out += "\n" + errorStyle.Render("✖ "+m.formErr)
	}
	return out
}

func (m Model) viewHelp() string {
	bindings := []key.Binding{
		keys.AddItem, keys.EditItem, keys.Delete, keys.AddIncome,
		keys.AddSavings, keys.AddGoal, keys.SetAmount, keys.CycleColor,
		keys.SwitchPane, keys.Quit,
	}
	parts := make([]string, len(bindings))
	for i, b := range bindings {
		parts[i] = b.Help().Key + " " + b.Help().Desc
	}
	return helpStyle.Render(strings.Join(parts, " • "))
}

// displayColor mirrors categoryColor but never mutates assignment state; it
// falls back to the stored item color for categories the picker has not
// touched.
func (m Model) displayColor(category string) string {
	if idx, ok := m.catColors[category]; ok {
		return normalizeHex(paletteColor(idx))
	}
	for _, it := range m.snap.BudgetItems {
		if it.Category == category && it.Color != "" {
			return normalizeHex(it.Color)
		}
	}
	return defaultColor
}
