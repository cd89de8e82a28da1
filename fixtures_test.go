package main

// Fixtures recorded from a real recovery pass: a single-wallet backup whose
// shares combine to a known private key. The mnemonic is the standard BIP-39
// twelve-word test phrase.
const (
	testMnemonic = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

	testSalt       = "3f8a21"
	testEntropyHex = "5307f02a8f599c4e3471d9bf955fc52e1fd4c496c961688867374ecd631b8d58"

	testX1Hex   = "f7920bd0501b68ca2f2cd17b07125c1a75e67bdb16117fd93c3ed9a281778833"
	testX2Hex   = "5cae07d09f0734a4cf96c1716c3ce45223c0046f782fd5b4eb8821f63f11df75"
	testPrivHex = "857915662fdf9c9cc5ce0acadea5422fa49cde901e166be8cfba1fdf7d5805a4"
	testAddress = "0x3185677c4e5f9746ddd36aeff069c9580a1f3543"

	testRemote   = "3f8a21.000102030405060708090a0b0c0d0e0f1011121314151617.d2zOFeRDRK4UXg2vObE8ssd6p/U7JbbUPh32QZxg82KLw8lesFWWP9KrQRtE6RO79+4aJX2QTakaQHkHUyBPeTrx58pIK4ESzycuvredVZ0YfjiOzcPS7nT7fbXMIm18/rOyMymkI+WFuQ=="
	testKeyshare = "eyJ4MiI6eyJzY2FsYXIiOiI1Y2FlMDdkMDlmMDczNGE0Y2Y5NmMxNzE2YzNjZTQ1MjIzYzAwNDZmNzgyZmQ1YjRlYjg4MjFmNjNmMTFkZjc1In19"

	testRemotePlain = `{"keyShareData":{"x1":"f7920bd0501b68ca2f2cd17b07125c1a75e67bdb16117fd93c3ed9a281778833"}}`

	testBackupHash = "fa6e8e7f3db4a17ada5ebd55d29b839ab002c8775b63f49016fb7ca9377e6fdd"

	testBackupJSON = `{"version":1,"time":"2024-11-05T09:12:44.000Z","wallet":[{"address":"0x3185677c4e5f9746ddd36aeff069c9580a1f3543","keyshare":"eyJ4MiI6eyJzY2FsYXIiOiI1Y2FlMDdkMDlmMDczNGE0Y2Y5NmMxNzE2YzNjZTQ1MjIzYzAwNDZmNzgyZmQ1YjRlYjg4MjFmNjNmMTFkZjc1In19","remote":"3f8a21.000102030405060708090a0b0c0d0e0f1011121314151617.d2zOFeRDRK4UXg2vObE8ssd6p/U7JbbUPh32QZxg82KLw8lesFWWP9KrQRtE6RO79+4aJX2QTakaQHkHUyBPeTrx58pIK4ESzycuvredVZ0YfjiOzcPS7nT7fbXMIm18/rOyMymkI+WFuQ=="}],"hash":"6e8e7f3db4a17ada5ebd55d29b839ab002c8775b63f49016fb7ca9377e6fdd"}`

	// same shares, but the entry claims an address the key does not belong to;
	// the checksum is valid so only the address cross-check trips
	testMismatchBackupJSON = `{"version":1,"time":"2024-11-05T09:12:44.000Z","wallet":[{"address":"0xabababababababababababababababababababab","keyshare":"eyJ4MiI6eyJzY2FsYXIiOiI1Y2FlMDdkMDlmMDczNGE0Y2Y5NmMxNzE2YzNjZTQ1MjIzYzAwNDZmNzgyZmQ1YjRlYjg4MjFmNjNmMTFkZjc1In19","remote":"3f8a21.000102030405060708090a0b0c0d0e0f1011121314151617.d2zOFeRDRK4UXg2vObE8ssd6p/U7JbbUPh32QZxg82KLw8lesFWWP9KrQRtE6RO79+4aJX2QTakaQHkHUyBPeTrx58pIK4ESzycuvredVZ0YfjiOzcPS7nT7fbXMIm18/rOyMymkI+WFuQ=="}],"hash":"8ce16e4c76e9bed18909c9ac74f23c75c4eb85dcdd5885c2f498907a55b441"}`
)
