// Package templates renders the directory pages. Each exported function
// returns a templ.Component so handlers render pages and htmx fragments the
// same way.
package templates

import (
	"context"
	"html/template"
	"io"

	"github.com/a-h/templ"

	"github.com/csg33k/employee-directory/internal/domain"
)

// ManagerData backs the list-and-create page and its fragments.
type ManagerData struct {
	Form      domain.EmployeeForm
	Employees []domain.Employee
}

type detailData struct {
	Employee *domain.Employee
}

var funcs = template.FuncMap{
	"position":    position,
	"itoa":        itoa,
	"departments": func() []string { return domain.Departments },
	"genders":     func() []string { return domain.Genders },
}

var baseTmpl = template.Must(template.New("base").Funcs(funcs).Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>{{block "title" .}}Employee Manager{{end}}</title>
<script src="https://unpkg.com/htmx.org@1.9.12"></script>
<link rel="preconnect" href="https://fonts.googleapis.com">
<link rel="preconnect" href="https://fonts.gstatic.com" crossorigin>
<link href="https://fonts.googleapis.com/css2?family=IBM+Plex+Mono:wght@400;500;600&family=IBM+Plex+Sans:wght@300;400;500;600&display=swap" rel="stylesheet">
<style>
  :root {
    --ink: #0d1117;
    --paper: #f5f0e8;
    --ledger: #e8e0cc;
    --accent: #c0392b;
    --accent2: #2c6e49;
    --muted: #6b5e4e;
    --rule: #b8a898;
  }
  * { box-sizing: border-box; }
  body {
    background: var(--paper);
    color: var(--ink);
    font-family: 'IBM Plex Sans', sans-serif;
    min-height: 100vh;
    margin: 0;
  }
  .app { max-width: 1100px; margin: 0 auto; padding: 32px 24px; }
  .app-header h1 {
    font-family: 'IBM Plex Mono', monospace;
    font-size: 1.6rem; font-weight: 600; letter-spacing: -0.02em; margin: 0;
  }
  .app-header p { font-size: 0.85rem; color: var(--muted); margin-top: 4px; }
  .app-layout { display: grid; grid-template-columns: 1fr 2fr; gap: 32px; align-items: start; margin-top: 24px; }
  .panel {
    background: rgba(255,255,255,0.7);
    border: 1px solid var(--ledger);
    border-left: 4px solid var(--ink);
    padding: 24px;
  }
  .panel h2, .section-header {
    font-family: 'IBM Plex Mono', monospace;
    font-size: 0.7rem; font-weight: 600; letter-spacing: 0.18em; text-transform: uppercase;
    color: var(--muted);
    border-bottom: 1px solid var(--rule);
    padding-bottom: 4px; margin: 0 0 16px 0;
  }
  .form-row { margin-bottom: 12px; }
  .form-row > label, .form-row > span, .detail-label {
    font-family: 'IBM Plex Mono', monospace;
    font-size: 0.6rem; font-weight: 600; letter-spacing: 0.1em; text-transform: uppercase;
    color: var(--muted); display: block; margin-bottom: 2px;
  }
  input[type=text], input[type=email], select {
    background: white;
    border: 1px solid var(--rule);
    border-bottom: 2px solid var(--ink);
    padding: 6px 8px;
    font-family: 'IBM Plex Mono', monospace; font-size: 0.85rem;
    width: 100%; outline: none;
  }
  input:focus, select:focus { border-bottom-color: var(--accent); }
  .gender-group { display: flex; gap: 16px; font-size: 0.85rem; }
  .primary-button, .secondary-button, .danger-button {
    font-family: 'IBM Plex Mono', monospace; font-weight: 600; font-size: 0.75rem;
    letter-spacing: 0.08em; text-transform: uppercase; text-decoration: none;
    padding: 6px 14px; border: 2px solid var(--ink); cursor: pointer; display: inline-block;
  }
  .primary-button { background: var(--ink); color: white; }
  .primary-button:hover { background: var(--accent); border-color: var(--accent); }
  .secondary-button { background: white; color: var(--ink); }
  .danger-button { background: white; color: var(--accent); border-color: var(--accent); }
  .danger-button:hover { background: var(--accent); color: white; }
  .employee-table { width: 100%; border-collapse: collapse; font-size: 0.85rem; }
  .employee-table th {
    font-family: 'IBM Plex Mono', monospace; font-size: 0.6rem; letter-spacing: 0.1em;
    text-transform: uppercase; color: var(--muted); text-align: left;
    border-bottom: 2px solid var(--ink); padding: 6px 4px;
  }
  .employee-table td { border-bottom: 1px solid var(--ledger); padding: 6px 4px; }
  .employee-table-empty-row td { text-align: center; color: var(--muted); padding: 16px; }
  .table-actions { display: flex; gap: 6px; }
  .table-actions form { margin: 0; }
  .detail-row { margin-bottom: 12px; }
  .detail-value { font-family: 'IBM Plex Mono', monospace; }
  .empty-state { color: var(--muted); }
  .detail-actions { margin-top: 24px; }
</style>
</head>
<body>
{{template "content" .}}
</body>
</html>

{{define "manager"}}
<section class="app-layout" id="manager">
  <section class="panel">
    <h2>Add a new employee</h2>
    {{template "employee-form" .Form}}
  </section>
  <section class="panel">
    <h2>Employees</h2>
    {{template "employee-list" .Employees}}
  </section>
</section>
{{end}}

{{define "employee-form"}}
<form class="employee-form" method="post" action="/employees"
  hx-post="/employees" hx-target="#manager" hx-swap="outerHTML">
  <div class="form-row">
    <label for="name">Name</label>
    <input id="name" name="name" type="text" value="{{.Name}}" placeholder="Enter full name">
  </div>
  <div class="form-row">
    <label for="email">Email</label>
    <input id="email" name="email" type="email" value="{{.Email}}" placeholder="name@example.com">
  </div>
  <div class="form-row">
    <span>Gender</span>
    <div class="gender-group">
      {{$gender := .Gender}}
      {{range genders}}
      <label><input type="radio" name="gender" value="{{.}}"{{if eq . $gender}} checked{{end}}> {{.}}</label>
      {{end}}
    </div>
  </div>
  <div class="form-row">
    <label for="department">Department</label>
    <select id="department" name="department">
      {{$dept := .Department}}
      {{range departments}}
      <option value="{{.}}"{{if eq . $dept}} selected{{end}}>{{.}}</option>
      {{end}}
    </select>
  </div>
  <button type="submit" class="primary-button">Add employee</button>
</form>
{{end}}

{{define "employee-list"}}
<div class="employee-list" id="employee-list">
  <table class="employee-table">
    <thead>
      <tr>
        <th>#</th>
        <th>Name</th>
        <th>Email</th>
        <th>Gender</th>
        <th>Department</th>
        <th>Actions</th>
      </tr>
    </thead>
    <tbody>
      {{range $i, $e := .}}
      <tr>
        <td>{{position $i}}</td>
        <td>{{$e.Name}}</td>
        <td>{{$e.Email}}</td>
        <td>{{$e.Gender}}</td>
        <td>{{$e.Department}}</td>
        <td class="actions-cell">
          <div class="table-actions">
            <a class="secondary-button" href="/employee/{{itoa $e.ID}}">View</a>
            <form method="post" action="/employees/{{itoa $e.ID}}/delete">
              <button type="submit" class="danger-button"
                hx-delete="/employees/{{itoa $e.ID}}"
                hx-target="#employee-list"
                hx-swap="outerHTML">Delete</button>
            </form>
          </div>
        </td>
      </tr>
      {{else}}
      <tr class="employee-table-empty-row">
        <td colspan="6">No employees added yet.</td>
      </tr>
      {{end}}
    </tbody>
  </table>
</div>
{{end}}`))

var indexTmpl = template.Must(template.Must(baseTmpl.Clone()).Parse(`
{{define "content"}}
<main class="app">
  <header class="app-header">
    <h1>Employee Manager</h1>
    <p>Add employees and view them in the table.</p>
  </header>
  {{template "manager" .}}
</main>
{{end}}`))

var detailTmpl = template.Must(template.Must(baseTmpl.Clone()).Parse(`
{{define "title"}}Employee Details{{end}}
{{define "content"}}
<main class="app">
  <header class="app-header">
    <h1>Employee Details</h1>
    <p>View a single employee record.</p>
  </header>
  <section class="app-layout" style="grid-template-columns:1fr;">
    <section class="panel">
      {{with .Employee}}
      <div class="employee-detail">
        <div class="detail-row">
          <span class="detail-label">Name</span>
          <span class="detail-value">{{.Name}}</span>
        </div>
        <div class="detail-row">
          <span class="detail-label">Email</span>
          <span class="detail-value">{{.Email}}</span>
        </div>
        <div class="detail-row">
          <span class="detail-label">Gender</span>
          <span class="detail-value">{{.Gender}}</span>
        </div>
        <div class="detail-row">
          <span class="detail-label">Department</span>
          <span class="detail-value">{{.Department}}</span>
        </div>
        <div class="detail-row">
          <span class="detail-label">Added</span>
          <span class="detail-value">{{.CreatedAt.Format "2006-01-02 15:04"}}</span>
        </div>
      </div>
      {{else}}
      <p class="empty-state">Employee not found.</p>
      {{end}}
      <div class="detail-actions">
        <a class="secondary-button" href="/">Back to list</a>
      </div>
    </section>
  </section>
</main>
{{end}}`))

// execute wraps a named template in a templ.Component.
func execute(t *template.Template, name string, data any) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return t.ExecuteTemplate(w, name, data)
	})
}

// Index is the full list-and-create page served at "/".
func Index(data ManagerData) templ.Component {
	return execute(indexTmpl, "base", data)
}

// Manager is the form and list pair swapped in after a submission.
func Manager(data ManagerData) templ.Component {
	return execute(indexTmpl, "manager", data)
}

// EmployeeList is the table fragment swapped in after a deletion.
func EmployeeList(employees []domain.Employee) templ.Component {
	return execute(indexTmpl, "employee-list", employees)
}

// Detail renders a single record, or the not-found state when e is nil.
func Detail(e *domain.Employee) templ.Component {
	return execute(detailTmpl, "base", detailData{Employee: e})
}
