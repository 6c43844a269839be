package connectors

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/peekknuf/txnqa/internal/dataset"
)

// The three files a scoring bundle is made of.
const (
	TransactionsFile = "transactions.csv"
	CustomersFile    = "customer_kyc.csv"
	MerchantsFile    = "merchant_master.csv"
)

// Bundle holds the three tables that are scored together.
type Bundle struct {
	Dir          string
	Transactions *dataset.Dataset
	Customers    *dataset.Dataset
	Merchants    *dataset.Dataset
}

// Paths pins bundle files to explicit locations. Empty fields fall back
// to the conventional file name inside the bundle directory.
type Paths struct {
	Transactions string
	Customers    string
	Merchants    string
}

func (p Paths) complete() bool {
	return p.Transactions != "" && p.Customers != "" && p.Merchants != ""
}

// LoadBundle reads the three bundle files from dir. All three must be
// present and parseable.
func LoadBundle(dir string, options LoadOptions) (*Bundle, error) {
	return LoadBundleAt(dir, Paths{}, options)
}

// LoadBundleAt reads a bundle with per-file path overrides. The directory
// may be empty only when all three paths are set.
func LoadBundleAt(dir string, paths Paths, options LoadOptions) (*Bundle, error) {
	if dir == "" {
		if !paths.complete() {
			return nil, fmt.Errorf("bundle directory is required unless all three file paths are set")
		}
	} else {
		stat, err := os.Stat(dir)
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("directory does not exist: %s", dir)
		}
		if err != nil {
			return nil, err
		}
		if !stat.IsDir() {
			return nil, fmt.Errorf("path is not a directory: %s", dir)
		}
	}

	bundle := &Bundle{Dir: dir}
	targets := []struct {
		path string
		file string
		into **dataset.Dataset
	}{
		{paths.Transactions, TransactionsFile, &bundle.Transactions},
		{paths.Customers, CustomersFile, &bundle.Customers},
		{paths.Merchants, MerchantsFile, &bundle.Merchants},
	}
	for _, target := range targets {
		path := target.path
		if path == "" {
			path = filepath.Join(dir, target.file)
		}
		ds, err := LoadCSV(path, options)
		if err != nil {
			return nil, err
		}
		*target.into = ds
	}
	if bundle.Dir == "" {
		bundle.Dir = filepath.Dir(paths.Transactions)
	}
	return bundle, nil
}

// DiscoverBundles walks root and returns every directory that holds all
// three bundle files, in lexical order.
func DiscoverBundles(root string) ([]string, error) {
	if root == "" {
		return nil, fmt.Errorf("root directory cannot be empty")
	}
	stat, err := os.Stat(root)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("directory does not exist: %s", root)
	}
	if err != nil {
		return nil, err
	}
	if !stat.IsDir() {
		return nil, fmt.Errorf("path is not a directory: %s", root)
	}

	matches, err := doublestar.Glob(os.DirFS(root), "**/"+TransactionsFile)
	if err != nil {
		return nil, fmt.Errorf("directory walk error: %w", err)
	}

	var dirs []string
	for _, match := range matches {
		dir := filepath.Join(root, filepath.Dir(match))
		if hasBundleFiles(dir) {
			dirs = append(dirs, dir)
		}
	}
	if len(dirs) == 0 {
		return nil, fmt.Errorf("no bundles found in %s", root)
	}
	sort.Strings(dirs)
	return dirs, nil
}

func hasBundleFiles(dir string) bool {
	for _, file := range []string{TransactionsFile, CustomersFile, MerchantsFile} {
		if _, err := os.Stat(filepath.Join(dir, file)); err != nil {
			return false
		}
	}
	return true
}
