/*
© 2022-present Harald Rudell <haraldrudell@proton.me> (https://haraldrudell.github.io/haraldrudell/)
All rights reserved
*/

package pfmt

import (
	"fmt"
	"strings"
)

// "2[rob,pike]"
func SliceString[E any](slic []E) (s string) {
	parts := make([]string, len(slic))
	for i, e := range slic {
		parts[i] = fmt.Sprintf("%v", e)
	}
	return fmt.Sprintf("%d[%s]", len(slic), strings.Join(parts, ","))
}
