package render

const userTemplate = `
<h3 class="h4">About <span>{{.Login}}</span></h3>
<div class="top">
  <img src="{{.AvatarURL}}" alt="{{.Login}}">
  <a class="button" href="{{.HTMLURL}}" target="_blank">View Profile</a>
  <div class="bio">{{.BioText}}</div>
  <ul>
    <li class="followers">Followers: {{.Followers}}</li>
    <li class="following">Following: {{.Following}}</li>
    <li class="repos">Public Repos: {{.PublicRepos}}</li>
    <li class="gists">Public Gists: {{.PublicGists}}</li>
  </ul>
</div>`

const reposTemplate = `
<h3 class="h4">Latest Repos:</h3>
<ul>
{{- range .}}
  <li class="repo">
    <a target="_blank" href="{{.HTMLURL}}">
      <h4 class="h6">{{.Name}}</h4>
      <div class="stats">
        <div>{{.Stars}} stars</div>
        <div>{{.Watchers}} watchers</div>
        <div>{{.Forks}} forks</div>
      </div>
    </a>
  </li>
{{- end}}
</ul>`

const pageTemplate = `<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Github User Profile</title>
  <style>.hide { display: none; }</style>
</head>
<body>
<div class="app-container">
  <div class="github-finder">
    <h2 class="title">Github User Profile</h2>
    {{- range .Notifications}}
    <div class="notification {{.Level}}" role="alert">{{.Message}}</div>
    {{- end}}
    <div class="main">
      <form data-form method="post" action="/">
        <label>
          <input type="text" name="query" placeholder="Enter username" value="{{.Form.Query}}">
        </label>
        <button>{{.Form.ButtonLabel}}</button>
      </form>
      <div class="user-result{{if .User.Hidden}} hide{{end}}" data-user>{{.User.Content}}</div>
      <div class="repos-result{{if .Repos.Hidden}} hide{{end}}" data-repos>{{.Repos.Content}}</div>
    </div>
  </div>
</div>
</body>
</html>
`
