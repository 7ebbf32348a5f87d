package tui

// labelColumnWidth matches the label padding used by the built-in renderers
// so inputs line up across field types.
const labelColumnWidth = 18

const helpText = "tab move • ←/→ option • ctrl+v validate • ctrl+r reset • ctrl+t theme • ctrl+s accept • esc cancel"
