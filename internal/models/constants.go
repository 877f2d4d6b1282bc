package models

// ============================================================================
// PROJECT FILTER CONSTANTS
// ============================================================================

// AllProjects is the active-project filter value that matches every task
const AllProjects = "all"

// ============================================================================
// DATE CONSTANTS
// ============================================================================

// DueDateLayout is the input layout for due dates in forms and flags
const DueDateLayout = "2006-01-02"

// ShortDateLayout is the display layout for due dates on cards and rows
const ShortDateLayout = "Jan 02"
