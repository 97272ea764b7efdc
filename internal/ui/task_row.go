package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/swipetodo/internal/model"
)

// TaskRow renders one task. Done tasks are struck through in the secondary
// color; a row being swiped slides by the drag offset and fades out.
type TaskRow struct {
	widget.BaseWidget

	task     model.Task
	swipe    *SwipeHandler
	paddingX float32
	paddingY float32

	onTap func(key string)
}

var (
	_ fyne.Tappable       = (*TaskRow)(nil)
	_ fyne.Draggable      = (*TaskRow)(nil)
	_ mobile.Touchable    = (*TaskRow)(nil)
	_ fyne.WidgetRenderer = (*taskRowRenderer)(nil)
)

// NewTaskRow creates a new task row widget
func NewTaskRow(swipe *SwipeHandler, paddingX, paddingY float32, onTap func(key string)) *TaskRow {
	tr := &TaskRow{
		swipe:    swipe,
		paddingX: paddingX,
		paddingY: paddingY,
		onTap:    onTap,
	}
	tr.ExtendBaseWidget(tr)
	return tr
}

// SetTask binds the row to a task
func (tr *TaskRow) SetTask(task model.Task) {
	tr.task = task
	tr.Refresh()
}

// Task returns the bound task
func (tr *TaskRow) Task() model.Task {
	return tr.task
}

// Offset returns the current horizontal drag offset of the row
func (tr *TaskRow) Offset() float32 {
	if tr.swipe == nil || tr.task.ID == "" {
		return 0
	}
	return tr.swipe.Offset(tr.task.ID)
}

// Opacity returns the current text opacity of the row
func (tr *TaskRow) Opacity() float32 {
	if tr.swipe == nil || tr.task.ID == "" {
		return 1
	}
	return tr.swipe.Opacity(tr.task.ID)
}

// Tapped toggles the task
func (tr *TaskRow) Tapped(*fyne.PointEvent) {
	if tr.onTap != nil && tr.task.ID != "" {
		tr.onTap(tr.task.ID)
	}
}

// Dragged handles pointer and touch drags
func (tr *TaskRow) Dragged(event *fyne.DragEvent) {
	if tr.swipe == nil || tr.task.ID == "" {
		return
	}
	tr.swipe.Dragged(tr.task.ID, event)
	tr.Refresh()
}

// DragEnd releases the swipe
func (tr *TaskRow) DragEnd() {
	if tr.swipe == nil {
		return
	}
	tr.swipe.Release()
	tr.Refresh()
}

// TouchDown handles touch down events
func (tr *TaskRow) TouchDown(event *mobile.TouchEvent) {
	if tr.swipe == nil || tr.task.ID == "" {
		return
	}
	tr.swipe.TouchDown(tr.task.ID, event)
}

// TouchUp handles touch up events
func (tr *TaskRow) TouchUp(*mobile.TouchEvent) {
	if tr.swipe == nil {
		return
	}
	tr.swipe.Release()
	tr.Refresh()
}

// TouchCancel handles touch cancel events
func (tr *TaskRow) TouchCancel(*mobile.TouchEvent) {
	if tr.swipe == nil {
		return
	}
	tr.swipe.Cancel()
	tr.Refresh()
}

// CreateRenderer creates the widget renderer
func (tr *TaskRow) CreateRenderer() fyne.WidgetRenderer {
	r := &taskRowRenderer{
		row:    tr,
		border: canvas.NewLine(ColorTextSecondary),
		text:   canvas.NewText("", theme.Color(theme.ColorNameForeground)),
		strike: canvas.NewLine(ColorTextSecondary),
	}
	r.border.StrokeWidth = BorderThickness
	r.strike.StrokeWidth = StrikeThickness
	r.Refresh()
	return r
}

// taskRowRenderer renders the task row widget
type taskRowRenderer struct {
	row    *TaskRow
	border *canvas.Line
	text   *canvas.Text
	strike *canvas.Line
}

// Layout arranges the components
func (r *taskRowRenderer) Layout(size fyne.Size) {
	r.border.Position1 = fyne.NewPos(0, 0)
	r.border.Position2 = fyne.NewPos(size.Width, 0)

	r.text.Text = truncateToWidth(r.row.task.Text, size.Width-2*r.row.paddingX, r.text.TextSize, r.text.TextStyle)
	textSize := r.text.MinSize()
	x := r.row.paddingX + r.row.Offset()
	y := (size.Height - textSize.Height) / 2
	r.text.Move(fyne.NewPos(x, y))
	r.text.Resize(textSize)

	middle := y + textSize.Height/2
	r.strike.Position1 = fyne.NewPos(x, middle)
	r.strike.Position2 = fyne.NewPos(x+textSize.Width, middle)
}

// MinSize returns the minimum size. Width ignores the text, which is
// truncated to whatever width the row gets.
func (r *taskRowRenderer) MinSize() fyne.Size {
	textSize := fyne.MeasureText(Ellipsis, r.text.TextSize, r.text.TextStyle)
	height := textSize.Height + 2*r.row.paddingY
	if height < MinTouchTargetSize {
		height = MinTouchTargetSize
	}
	return fyne.NewSize(textSize.Width+2*r.row.paddingX, height)
}

// Refresh refreshes the renderer
func (r *taskRowRenderer) Refresh() {
	task := r.row.task

	base := theme.Color(theme.ColorNameForeground)
	if task.Done {
		base = ColorTextSecondary
	}
	opacity := r.row.Opacity()

	r.text.Text = task.Text
	r.text.TextSize = theme.Size(theme.SizeNameText)
	r.text.Color = fade(base, opacity)
	r.strike.StrokeColor = fade(ColorTextSecondary, opacity)
	if task.Done {
		r.strike.Show()
	} else {
		r.strike.Hide()
	}
	r.border.StrokeColor = theme.Color(theme.ColorNameSeparator)

	r.Layout(r.row.Size())
	canvas.Refresh(r.row)
}

// Objects returns the canvas objects
func (r *taskRowRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.border, r.text, r.strike}
}

// Destroy cleans up the renderer
func (r *taskRowRenderer) Destroy() {}

// truncateToWidth shortens text with a trailing ellipsis so it fits width.
// A row that has not been laid out yet (width <= 0) keeps the full text.
func truncateToWidth(text string, width, textSize float32, style fyne.TextStyle) string {
	if width <= 0 || fyne.MeasureText(text, textSize, style).Width <= width {
		return text
	}

	runes := []rune(text)
	lo, hi := 0, len(runes)
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if fyne.MeasureText(string(runes[:mid])+Ellipsis, textSize, style).Width <= width {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return string(runes[:lo]) + Ellipsis
}

// fade scales the alpha of c by opacity
func fade(c color.Color, opacity float32) color.Color {
	nrgba := color.NRGBAModel.Convert(c).(color.NRGBA)
	nrgba.A = uint8(float32(nrgba.A)*opacity + 0.5)
	return nrgba
}
