package scene

import "strings"

// DefaultID is shown when the page does not name a scene.
const DefaultID = "hello-triangle"

const routePrefix = "scene/"

// Path returns the page path of scene id under basePath, which must end in "/".
func Path(basePath, id string) string {
	return basePath + routePrefix + id
}

// IDFromPath extracts the scene id from a "<base>/scene/<id>" path. ok is
// false if the path does not have that shape.
func IDFromPath(basePath, p string) (id string, ok bool) {
	rest, found := strings.CutPrefix(p, basePath+routePrefix)
	if !found {
		return "", false
	}
	rest = strings.TrimSuffix(rest, "/")
	if rest == "" || strings.Contains(rest, "/") {
		return "", false
	}
	return rest, true
}

// IDFromLocation picks the scene to show for a page location. The "scene"
// query parameter wins over the path; without either DefaultID is used.
func IDFromLocation(pathname, query string) string {
	if query != "" {
		return query
	}
	if i := strings.LastIndex(pathname, "/"+routePrefix); i >= 0 {
		if id, ok := IDFromPath(pathname[:i+1], pathname); ok {
			return id
		}
	}
	return DefaultID
}
