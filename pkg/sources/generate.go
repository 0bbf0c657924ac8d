//go:generate gomarkdoc -e -f github -o README.md . --repository.url https://github.com/s2wiki/pagetools --repository.default-branch main --repository.path /pkg/sources

package sources
