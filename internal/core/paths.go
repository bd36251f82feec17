// Rentora | 2026
// paths.go

package core

// Files shipped with the service rather than uploaded by users.
var defaultStaticFiles = map[string]struct{}{
	"default-avatar.jpg": {},
}

// FileResolver maps a stored filename to the public route it is served
// from: bundled defaults live under the static route, everything else
// under the upload route.
type FileResolver struct {
	staticRoute string
	uploadRoute string
}

func NewFileResolver(staticRoute, uploadRoute string) *FileResolver {
	return &FileResolver{
		staticRoute: staticRoute,
		uploadRoute: uploadRoute,
	}
}

func (r *FileResolver) Resolve(name string) string {
	if name == "" {
		return ""
	}

	if _, ok := defaultStaticFiles[name]; ok {
		return r.staticRoute + "/" + name
	}

	return r.uploadRoute + "/" + name
}

func (r *FileResolver) ResolveAll(names []string) []string {
	resolved := make([]string, 0, len(names))
	for _, name := range names {
		resolved = append(resolved, r.Resolve(name))
	}
	return resolved
}
