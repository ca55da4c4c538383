package principal

import (
	"strconv"

	"github.com/go-ldap/ldap/v3"
)

// ldapGroupAttr is the attribute a directory entry carries its group
// memberships under, matching the "memberOf" convention most LDAP/AD
// schemas use.
const ldapGroupAttr = "memberOf"

// FromLDAPEntry builds an AWS-kind Identity (an AWS-kind principal here
// means "an identity NebulaIO itself can name", regardless of where it
// was authenticated) from a resolved directory entry, keyed by
// distinguished name with group memberships copied into Tags so
// condition keys like aws:PrincipalTag/group can match against them.
func FromLDAPEntry(entry *ldap.Entry) Identity {
	tags := map[string]string{}
	for i, group := range entry.GetAttributeValues(ldapGroupAttr) {
		tags[groupTagKey(i)] = group
	}
	return Identity{Kind: AWS, ID: entry.DN, Tags: tags}
}

func groupTagKey(i int) string {
	return "group." + strconv.Itoa(i)
}
