package foundation

import (
	"strings"

	"github.com/ebitengine/purego/objc"
)

func standardDefaults() objc.ID {
	initObjC()
	return objc.ID(clsNSUserDefaults).Send(selStandardDefaults)
}

// DefaultsData returns the data blob stored in NSUserDefaults under key.
// The second result is false when no data entry exists.
func DefaultsData(key string) ([]byte, bool) {
	data := objc.Send[objc.ID](standardDefaults(), selDataForKey, nsString(key))
	if data == 0 {
		return nil, false
	}
	return goBytes(data), true
}

// SetDefaultsData stores a data blob in NSUserDefaults under key, replacing
// any existing value.
func SetDefaultsData(key string, value []byte) {
	standardDefaults().Send(selSetObjectForKey, nsData(value), nsString(key))
}

// RemoveDefaultsKey deletes the NSUserDefaults entry for key, if any.
func RemoveDefaultsKey(key string) {
	standardDefaults().Send(selRemoveObjectForKey, nsString(key))
}

// DefaultsKeys returns every NSUserDefaults key with the given prefix.
func DefaultsKeys(prefix string) []string {
	dict := objc.Send[objc.ID](standardDefaults(), selDictionaryRep)
	if dict == 0 {
		return nil
	}
	keys := objc.Send[objc.ID](dict, selAllKeys)
	if keys == 0 {
		return nil
	}
	n := objc.Send[uintptr](keys, selCount)
	var out []string
	for i := uintptr(0); i < n; i++ {
		k := goString(objc.Send[objc.ID](keys, selObjectAtIndex, i))
		if strings.HasPrefix(k, prefix) {
			out = append(out, k)
		}
	}
	return out
}
