// Package target builds the MakeMaker install-path overrides for a local repository.
package target

import "strings"

// Keys in the order they are passed to Makefile.PL.
const (
	KeyPrefix     = "PREFIX"
	KeyPrivLib    = "INSTALLPRIVLIB"
	KeyScript     = "INSTALLSCRIPT"
	KeySiteLib    = "INSTALLSITELIB"
	KeyBin        = "INSTALLBIN"
	KeyMan1Dir    = "INSTALLMAN1DIR"
	KeyMan3Dir    = "INSTALLMAN3DIR"
	privLibSuffix = "/lib/perl5"
)

// Param is a single KEY=VALUE override.
type Param struct {
	Key   string
	Value string
}

// String renders the parameter as KEY=VALUE.
func (p Param) String() string {
	return p.Key + "=" + p.Value
}

// Params is the ordered set of overrides derived from one repository path.
type Params []Param

// New derives the overrides from the canonical repository path repo.
// Values are plain concatenations of repo and fixed suffixes.
func New(repo string) Params {
	lib := repo + privLibSuffix
	return Params{
		{Key: KeyPrefix, Value: repo},
		{Key: KeyPrivLib, Value: lib},
		{Key: KeyScript, Value: repo + "/bin"},
		{Key: KeySiteLib, Value: lib + "/site_perl"},
		{Key: KeyBin, Value: repo + "/bin"},
		{Key: KeyMan1Dir, Value: lib + "/man"},
		{Key: KeyMan3Dir, Value: lib + "/man3"},
	}
}

// Args returns the overrides as separate argv elements.
func (p Params) Args() []string {
	args := make([]string, len(p))
	for i, param := range p {
		args[i] = param.String()
	}
	return args
}

// Blob joins the overrides with single spaces, as shown to the user.
func (p Params) Blob() string {
	return strings.Join(p.Args(), " ")
}

// Lookup returns the value for key.
func (p Params) Lookup(key string) (string, bool) {
	for _, param := range p {
		if param.Key == key {
			return param.Value, true
		}
	}
	return "", false
}

// LibPath returns the PERL5LIB value that makes modules installed with these
// overrides visible: the private library followed by the site library.
func (p Params) LibPath() string {
	priv, _ := p.Lookup(KeyPrivLib)
	site, _ := p.Lookup(KeySiteLib)
	return priv + ":" + site
}
